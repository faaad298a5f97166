package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/dc4u/internal/config"
	"github.com/dgallion1/dc4u/internal/pipeline"
)

const testKey = "test-key"

const goodBlock = "`TXT`\n" +
	"<Jane Doe;S1234567A;Chinese;29;Female;Singaporean>\n" +
	"[Theft;01/02/2023;stole a wallet]\n" +
	"@Penal Code s.379@\n" +
	"{Officer Tan;Inspector, CID;05/02/2023}"

const badBlock = "`TXT`\n<Jane Doe;S1234567A;Chinese;abc;Female;Singaporean>"

func newTestServer(t *testing.T, start bool) (*Server, config.Config) {
	t.Helper()
	cfg := config.Defaults()
	cfg.APIKey = testKey
	cfg.WorkerCount = 1
	cfg.MaxQueueSize = 4

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := pipeline.NewOrchestrator(cfg, log)
	if start {
		orch.Start(context.Background())
		t.Cleanup(orch.Stop)
	}
	return NewServer(orch, log, cfg), cfg
}

func do(t *testing.T, s http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuth(t *testing.T) {
	s, _ := newTestServer(t, false)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/compile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing authorization", decode(t, rec)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/stats/compile", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid api key", decode(t, rec)["error"])
}

func TestCompile_RawText(t *testing.T) {
	s, _ := newTestServer(t, false)
	body := strings.NewReader(goodBlock + "\n---\n" + badBlock)

	rec := do(t, s, http.MethodPost, "/api/compile?filename=sample1.dc&include_data=true", body, "text/plain")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, "sample1", out["source"])
	assert.EqualValues(t, 1, out["rendered"])
	assert.EqualValues(t, 1, out["failed"])

	blocks := out["blocks"].([]any)
	require.Len(t, blocks, 2)

	first := blocks[0].(map[string]any)
	assert.Equal(t, "sample1-Draft-Charge-1.txt", first["file_name"])
	assert.NotEmpty(t, first["data"])
	assert.Equal(t, "Jane Doe", first["record"].(map[string]any)["suspect_name"])

	second := blocks[1].(map[string]any)
	assert.Equal(t, "field", second["kind"])
	assert.Contains(t, second["error"], "block 2: field: ")
	assert.Nil(t, second["file_name"])
}

func TestCompile_Multipart(t *testing.T) {
	s, _ := newTestServer(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "../../cases.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(goodBlock))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := do(t, s, http.MethodPost, "/api/compile", &buf, mw.FormDataContentType())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, "cases", out["source"])
	block := out["blocks"].([]any)[0].(map[string]any)
	assert.Equal(t, "cases-Draft-Charge-1.txt", block["file_name"])
	assert.Nil(t, block["data"], "payload omitted unless requested")
}

func TestCompile_Rejects(t *testing.T) {
	s, _ := newTestServer(t, false)

	rec := do(t, s, http.MethodPost, "/api/compile?filename=cases.xls", strings.NewReader("x"), "text/plain")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported file type: .xls", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/api/compile?filename=cases.docx", strings.NewReader("not a zip"), "text/plain")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/compile", strings.NewReader("x"), "multipart/form-data; boundary=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompile_TooLarge(t *testing.T) {
	s, _ := newTestServer(t, false)
	s.cfg.MaxUploadBytes = 16

	rec := do(t, s, http.MethodPost, "/api/compile", strings.NewReader(goodBlock), "text/plain")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "file exceeds max size (16 bytes)", decode(t, rec)["error"])
}

func TestJobs_Lifecycle(t *testing.T) {
	s, _ := newTestServer(t, true)

	rec := do(t, s, http.MethodPost, "/api/jobs?filename=sample1.dc", strings.NewReader(goodBlock+"\n---\n"+badBlock), "text/plain")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	submitted := decode(t, rec)
	jobID := submitted["job_id"].(string)
	assert.Equal(t, "/api/jobs/"+jobID+"/status", submitted["poll_url"])

	var status map[string]any
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		status = decode(t, do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/status", nil, ""))
		if status["status"] == string(pipeline.StatusPartial) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, string(pipeline.StatusPartial), status["status"])
	require.Len(t, status["outputs"].([]any), 2)

	rec = do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/outputs/1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sample1-Draft-Charge-1.txt"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Inspector, CID")

	rec = do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/outputs/2", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "block 2: field")

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/outputs/3", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/outputs/x", nil, "").Code)

	rec = do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/register", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	stats := decode(t, do(t, s, http.MethodGet, "/api/stats/compile", nil, ""))
	assert.EqualValues(t, 2, stats["stats"].(map[string]any)["count"])
}

func TestJobs_NotFound(t *testing.T) {
	s, _ := newTestServer(t, false)
	for _, path := range []string{"/status", "/outputs/1", "/register"} {
		rec := do(t, s, http.MethodGet, "/api/jobs/missing"+path, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestJobs_NotFinished(t *testing.T) {
	// Workers are not started, so the job stays queued.
	s, _ := newTestServer(t, false)

	rec := do(t, s, http.MethodPost, "/api/jobs?filename=sample1.dc", strings.NewReader(goodBlock), "text/plain")
	require.Equal(t, http.StatusAccepted, rec.Code)
	jobID := decode(t, rec)["job_id"].(string)

	rec = do(t, s, http.MethodGet, "/api/jobs/"+jobID+"/register", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "status queued")
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"cases.dc":           "cases.dc",
		"../../etc/cases.dc": "cases.dc",
		"":                   "unnamed",
		"a..b.dc":            "a_b.dc",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
