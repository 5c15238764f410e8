package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewerk/pipecheck/pkg/config"
	"github.com/gatewerk/pipecheck/pkg/logging"
	"github.com/gatewerk/pipecheck/pkg/report"
)

const validDoc = `class_id: com-gatewerk-pipeline
property_map:
  author: jane
  purpose: test
snap_map:
  11111111-1111-1111-1111-000000000000:
    class_id: com-gatewerk-csv-reader
    version: 1
  11111111-1111-1111-1111-000000000001:
    class_id: com-gatewerk-mapper
    version: 1
link_map:
  link100:
    src_id: 11111111-1111-1111-1111-000000000000
    src_view: output0
    dst_id: 11111111-1111-1111-1111-000000000001
    dst_view: input0
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := logging.NewLoggerTo(io.Discard, "error", "text")
	srv := NewServer(config.DefaultConfig(), logger, nil)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestValidateEndpointPass(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/validate", "application/x-yaml", strings.NewReader(validDoc))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var rep report.Report
	require.NoError(t, jsonDecode(resp.Body, &rep))
	assert.Equal(t, report.StatusPass, rep.Status)
}

func TestValidateEndpointFail(t *testing.T) {
	ts := newTestServer(t)

	doc := strings.Replace(validDoc, "com-gatewerk-pipeline", "com-other-document", 1)
	resp, err := http.Post(ts.URL+"/api/v1/validate", "application/x-yaml", strings.NewReader(doc))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var rep report.Report
	require.NoError(t, jsonDecode(resp.Body, &rep))
	assert.Equal(t, report.StatusFail, rep.Status)
	assert.Equal(t, 1, rep.ErrorCount)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
