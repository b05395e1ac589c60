package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupPipelineRouter(apiKey string, reached *bool) *gin.Engine {
	r := gin.New()
	r.Use(PipelineAuthMiddleware(apiKey))
	r.POST("/pipeline/prices", func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doRequest(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pipeline/prices", http.NoBody)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestPipelineAuthMiddleware(t *testing.T) {
	const key = "ingest-7f3c"

	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
		wantErrorCode string
	}{
		{"matching_key", key, key, http.StatusOK, ""},
		{"wrong_key", key, "ingest-0000", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"missing_key", key, "", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"prefix_of_key", key, "ingest-", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"key_with_suffix", key, key + "x", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"not_configured", "", "anything", http.StatusServiceUnavailable, "PIPELINE_NOT_CONFIGURED"},
		{"not_configured_no_key", "", "", http.StatusServiceUnavailable, "PIPELINE_NOT_CONFIGURED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			rec := doRequest(setupPipelineRouter(tt.configuredKey, &reached), tt.requestKey)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantErrorCode == "" {
				if !reached {
					t.Error("expected handler to be reached")
				}
				return
			}
			if reached {
				t.Error("handler must not run for a rejected request")
			}
			if code := errorCode(t, rec); code != tt.wantErrorCode {
				t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
			}
		})
	}
}
