package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspection_billing/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	testCompanyID    = "company-1"
	testInspectionID = "insp-1"
	testToken        = "5b0e3f9c-2a41-4c6e-9d8b-7f1a2c3d4e5f"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withCompany stands in for JWTAuth on company-scoped routes.
func withCompany(companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextCompanyID, companyID)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) map[string]any {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["code"] != code {
		t.Fatalf("expected code %s, got %v", code, body["code"])
	}
	return body
}
