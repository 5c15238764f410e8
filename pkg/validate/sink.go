package validate

// Sink receives validation findings. Fail reports a fatal finding and
// returns whether evaluation should continue; Warn reports an advisory
// finding.
type Sink interface {
	Fail(e *Error) bool
	Warn(w Warning)
}

// FirstFailure is the fast-path sink: it keeps only the first failure and
// stops evaluation there.
type FirstFailure struct {
	err *Error
}

// Fail records the first failure and stops evaluation.
func (f *FirstFailure) Fail(e *Error) bool {
	if f.err == nil {
		f.err = e
	}
	return false
}

// Warn discards the finding; the fast path is silent about advisory
// findings by contract.
func (f *FirstFailure) Warn(Warning) {}

// Err returns the recorded failure, or nil if validation passed.
func (f *FirstFailure) Err() error {
	if f.err == nil {
		return nil
	}
	return f.err
}

// Accumulator is the comprehensive-path sink: it records every finding and
// never stops evaluation.
type Accumulator struct {
	// Errors holds all fatal findings in evaluation order
	Errors []*Error

	// Warnings holds all advisory findings in evaluation order
	Warnings []Warning
}

// Fail records a failure and continues evaluation.
func (a *Accumulator) Fail(e *Error) bool {
	a.Errors = append(a.Errors, e)
	return true
}

// Warn records an advisory finding.
func (a *Accumulator) Warn(w Warning) {
	a.Warnings = append(a.Warnings, w)
}

// OK reports whether no fatal findings were recorded.
func (a *Accumulator) OK() bool {
	return len(a.Errors) == 0
}

// CategoryOK reports whether no fatal findings were recorded in the given
// category.
func (a *Accumulator) CategoryOK(cat Category) bool {
	for _, e := range a.Errors {
		if e.Category == cat {
			return false
		}
	}
	return true
}
