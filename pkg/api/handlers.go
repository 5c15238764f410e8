package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gatewerk/pipecheck/pkg/loader"
	"github.com/gatewerk/pipecheck/pkg/report"
	"github.com/gatewerk/pipecheck/pkg/validate"
)

// maxDocumentSize bounds request bodies. Pipeline documents are
// editor-authored and measured in kilobytes.
const maxDocumentSize = 4 << 20

// handleValidate validates a document supplied in the request body and
// responds with the full JSON report.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	acc := validate.Strict(data)
	if s.catalog != nil && acc.CategoryOK(validate.CategorySyntax) {
		if doc, err := loader.ParseDocument(data); err == nil {
			validate.CheckCatalog(r.Context(), doc, s.catalog, acc)
		}
	}

	rep := report.Build(r.Header.Get("X-Document-Name"), acc)
	s.logger.LogValidation(rep.File, "validated", map[string]interface{}{
		"status":   rep.Status,
		"errors":   rep.ErrorCount,
		"warnings": rep.WarningCount,
	})

	status := http.StatusOK
	if rep.Status == report.StatusFail {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, rep)
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
