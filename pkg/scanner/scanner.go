// Package scanner implements the fast, single-pass extraction used by the
// pre-commit gate. It reads the document line by line with a small section
// state machine instead of building a full parse tree, trading a little
// precision for speed. Syntax well-formedness is still checked with a real
// YAML parse first, because line patterns cannot catch every malformation.
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/gatewerk/pipecheck/pkg/pipeline"
)

// section tracks which top-level mapping the scanner is currently inside.
type section int

const (
	sectionNone section = iota
	sectionSnaps
	sectionLinks
)

// Scan extracts node identifiers, link endpoints, and required-field
// presence from a serialized document in one pass over its lines.
//
// The input is first probed with a permissive YAML parse. yaml.v2 is used
// deliberately: it tolerates duplicate mapping keys, so a duplicated node
// identifier surfaces later as a bookkeeping mismatch rather than being
// masked by a parse failure.
func Scan(data []byte) (*pipeline.Extraction, error) {
	var probe interface{}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	ex := &pipeline.Extraction{}
	cur := sectionNone

	// Entry indentation is learned from the first entry under each section
	// header, so documents authored with wider indents scan the same as
	// 2-space ones. Anything deeper than the entry indent is field level.
	entryIndent := -1

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		indent := leadingSpaces(line)
		if indent == 0 {
			cur = topLevel(line, ex)
			entryIndent = -1
			continue
		}

		switch cur {
		case sectionSnaps:
			id, isEntry := entryKey(line)
			if !isEntry || (entryIndent != -1 && indent != entryIndent) {
				continue
			}
			if entryIndent == -1 {
				entryIndent = indent
			}
			if pipeline.ValidNodeID(id) {
				ex.NodeIDs = append(ex.NodeIDs, id)
			} else {
				ex.MalformedIDs = append(ex.MalformedIDs, id)
			}
		case sectionLinks:
			if id, isEntry := entryKey(line); isEntry && (entryIndent == -1 || indent == entryIndent) {
				if entryIndent == -1 {
					entryIndent = indent
				}
				ex.Links = append(ex.Links, pipeline.Endpoint{LinkID: id})
				continue
			}
			if entryIndent == -1 || indent <= entryIndent || len(ex.Links) == 0 {
				continue
			}
			key, value, ok := fieldLine(line)
			if !ok {
				continue
			}
			last := &ex.Links[len(ex.Links)-1]
			switch key {
			case "src_id":
				last.SrcID = value
			case "dst_id":
				last.DstID = value
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return ex, nil
}

// topLevel records presence flags for a top-level key line and returns the
// section the scanner is entering.
func topLevel(line string, ex *pipeline.Extraction) section {
	key, value, ok := fieldLine(line)
	if !ok {
		return sectionNone
	}

	switch key {
	case pipeline.KeyClassID:
		ex.HasClassID = true
		ex.ClassIDValue = value
	case pipeline.KeyProperty:
		ex.HasProperties = true
	case pipeline.KeySnapMap:
		ex.HasSnapMap = true
		return sectionSnaps
	case pipeline.KeyLinkMap:
		ex.HasLinkMap = true
		return sectionLinks
	}
	return sectionNone
}

// entryKey returns the mapping key of a "key:" entry line.
func entryKey(line string) (string, bool) {
	trimmed := stripComment(strings.TrimSpace(line))
	if !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	return unquote(strings.TrimSuffix(trimmed, ":")), true
}

// fieldLine splits a "key: value" line into its key and unquoted value.
func fieldLine(line string) (key, value string, ok bool) {
	trimmed := stripComment(strings.TrimSpace(line))
	idx := strings.Index(trimmed, ":")
	if idx < 0 {
		return "", "", false
	}
	key = unquote(strings.TrimSpace(trimmed[:idx]))
	value = unquote(strings.TrimSpace(trimmed[idx+1:]))
	return key, value, true
}

// stripComment removes a trailing inline comment. A '#' only opens a
// comment at the start of the scalar or after whitespace, and never inside
// quotes.
func stripComment(s string) string {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#' && (i == 0 || s[i-1] == ' ' || s[i-1] == '\t'):
			return strings.TrimRight(s[:i], " \t")
		}
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
