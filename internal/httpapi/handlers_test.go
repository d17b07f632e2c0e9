package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MuratKramin/nlp-hw1/internal/alias"
	"github.com/MuratKramin/nlp-hw1/internal/config"
	"github.com/MuratKramin/nlp-hw1/internal/recognizer"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	dict := alias.Dict{15: {"НК РФ"}}
	cr, err := recognizer.Compile(dict)
	if err != nil {
		t.Fatalf("recognizer.Compile() error = %v", err)
	}

	cfg := config.GetDefaults()
	return NewServer(cfg, cr, BuildInfo{Version: "test", GoVersion: "go-test"})
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(testServer(t))
}

func TestHandleHealth_ReturnsHealthy(t *testing.T) {
	router := testRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status healthy, got %q", body["status"])
	}
}

func TestHandleDetect_ReturnsLinks(t *testing.T) {
	router := testRouter(t)

	reqBody, _ := json.Marshal(map[string]string{"text": "ст. 5 НК РФ"})
	req, _ := http.NewRequest(http.MethodPost, "/detect", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body detectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(body.Links))
	}
	if body.Links[0].LawID != 15 {
		t.Errorf("expected law_id 15, got %d", body.Links[0].LawID)
	}
	if body.Links[0].Point != nil {
		t.Errorf("expected nil point_article, got %v", *body.Links[0].Point)
	}
}

func TestHandleDetect_RejectsMissingBody(t *testing.T) {
	router := testRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/detect", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if _, ok := body["detail"]; !ok {
		t.Error("expected a \"detail\" field in the error body")
	}
}

func TestHandleReload_DisabledByDefault(t *testing.T) {
	router := testRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/reload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected reload to be disabled by default (404), got %d", w.Code)
	}
}

func TestHandleVersion_ReturnsBuildInfo(t *testing.T) {
	router := testRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["version"] != "test" {
		t.Errorf("expected version \"test\", got %v", body["version"])
	}
}
