// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/settle-convert/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, cfg types.ServerConfig) *Server {
	t.Helper()
	s, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, s, req)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{})
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	var body struct {
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, endpoints, body.Endpoints)
}

func TestConvertEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
		wantConv    string
	}{
		{
			name:       "gpa",
			body:       `{"type":"gpa","content":"Math, 4, A\nPhysics, 3, B+"}`,
			wantStatus: http.StatusOK,
			wantConv:   "Overall GPA (4.0 scale): 3.70",
		},
		{
			name:       "medical",
			body:       `{"type":"medical","content":"Temperature: 98.6 F"}`,
			wantStatus: http.StatusOK,
			wantConv:   "Temperature: 98.6 F → 37.0°C",
		},
		{
			name:       "empty content is allowed",
			body:       `{"type":"gpa","content":""}`,
			wantStatus: http.StatusOK,
			wantConv:   "Equivalent Percentage: 60.0%",
		},
		{
			name:        "unknown type",
			body:        `{"type":"xyz","content":"any text"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unknown conversion type",
		},
		{
			name:        "missing content",
			body:        `{"type":"gpa"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "wrong field type",
			body:        `{"type":"gpa","content":42}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "not json",
			body:        `type=gpa`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Request body must be JSON",
		},
	}

	s := newTestServer(t, types.ServerConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusOK {
				var e errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
				assert.Equal(t, tt.wantMessage, e.Message)
				return
			}

			var res types.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Contains(t, res.Converted, tt.wantConv)
			assert.NotEmpty(t, res.Type)
		})
	}
}

func TestConvertEndpoint_ReturnsOriginal(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{})
	rec := postJSON(t, s, `{"type":"medical","content":"Weight: 150 lb\n\nNotes"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Weight: 150 lb\n\nNotes", res.Original)
	require.Len(t, res.Conversions, 1)
	assert.Equal(t, "Weight", res.Conversions[0].TestName)
}

func TestConvertEndpoint_BodyLimit(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{MaxUploadBytes: 64})
	body := `{"type":"gpa","content":"` + strings.Repeat("x", 200) + `"}`

	rec := postJSON(t, s, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadEndpoint_BodyLimit(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{MaxUploadBytes: 256})
	req := multipartRequest(t, "gpa", "transcript.txt", strings.Repeat("Math, 3, A\n", 400))

	rec := do(t, s, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Upload exceeds size limit")
}

func TestUploadEndpoint_UnderLimit(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{MaxUploadBytes: 1024})
	rec := do(t, s, multipartRequest(t, "medical", "report.txt", "Glucose: 90 mg/dL"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "5.00 mmol/L")
}

func TestConvertEndpoint_KeepsClientRequestID(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{})
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(`{"type":"gpa","content":""}`))
	req.Header.Set(requestIDHeader, "req-123")

	rec := do(t, s, req)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
}

// multipartRequest builds an upload request; an empty filename omits the
// file part.
func multipartRequest(t *testing.T, convType, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", convType))
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/convert/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadEndpoint(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{})

	t.Run("converts uploaded file", func(t *testing.T) {
		rec := do(t, s, multipartRequest(t, "gpa", "transcript.txt", "Biology: 95%"))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var res types.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Biology: 95%", res.Original)
		assert.Contains(t, res.Converted, "Biology | Credits: 3 | Original: 95 (95%) → US Grade: 4.00")
	})

	t.Run("missing file", func(t *testing.T) {
		rec := do(t, s, multipartRequest(t, "gpa", "", ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No file uploaded")
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := do(t, s, multipartRequest(t, "pdf", "a.txt", "x"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown conversion type")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, types.ServerConfig{})
	postJSON(t, s, `{"type":"gpa","content":"Math, 3, A"}`)

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `settle_convert_conversions_total{type="gpa"}`)
}
