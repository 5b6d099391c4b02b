package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testRouter builds a route table with just enough wiring for the
// routing-level behaviors: the welcome endpoint, the 405 fallbacks and
// the 404 catch-all never touch a service or the database.
func testRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(Handlers{
		Utils:  NewUtilsHandler(nil, logger),
		Logger: logger,
	})
}

func doRequest(t *testing.T, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	testRouter().ServeHTTP(rec, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestRouter_Welcome(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/api/v1/utils")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message"] != "Hello from Bloggy-API!" {
		t.Errorf("message = %v", body["message"])
	}
	if body["version"] != APIVersion {
		t.Errorf("version = %v, want %s", body["version"], APIVersion)
	}
}

func TestRouter_NoRoute(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/api/v1/unicorns")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != "No route with that path found!" {
		t.Errorf("message = %v", body["message"])
	}
	if body["attemptedPath"] != "/api/v1/unicorns" {
		t.Errorf("attemptedPath = %v", body["attemptedPath"])
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"wrong verb on utils", http.MethodPost, "/api/v1/utils"},
		{"wrong verb on signup", http.MethodGet, "/api/v1/auth/signup"},
		{"unsupported verb on posts collection", http.MethodPut, "/api/v1/posts"},
		{"unsupported verb on a comment", http.MethodPatch, "/api/v1/posts/abc/comments/def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, tt.method, tt.path)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want 405", rec.Code)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			wantMessage := "Method " + tt.method + " Not Allowed for " + tt.path
			if body["message"] != wantMessage {
				t.Errorf("message = %v, want %q", body["message"], wantMessage)
			}
			methods, ok := body["allowedMethods"].([]interface{})
			if !ok || len(methods) != 4 {
				t.Fatalf("allowedMethods = %v", body["allowedMethods"])
			}
		})
	}
}

func TestRouter_DatabaseHealthWithoutPool(t *testing.T) {
	rec, body := doRequest(t, http.MethodGet, "/api/v1/utils/databaseHealth")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["host"] != "Not connected" {
		t.Errorf("host = %v, want Not connected", body["host"])
	}
	models, ok := body["models"].([]interface{})
	if !ok || len(models) != 3 {
		t.Errorf("models = %v, want the three table names", body["models"])
	}
}
