package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kyc-backend/internal/documents"
	localstore "kyc-backend/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := &documents.Service{
		Store:         localstore.New(t.TempDir()),
		PublicBaseURL: "http://localhost:8080",
	}
	api := router.Group("/api/v1")
	documents.NewHandler(svc).RegisterRoutes(api)
	return router
}

func uploadImage(t *testing.T, router *gin.Engine, userID, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("userId", userID); err != nil {
		t.Fatalf("write userId field: %v", err)
	}
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadAndServe(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadImage(t, router, "user-1", "passport.jpg", []byte("fake image bytes"))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
		ImageURL   string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if !strings.Contains(created.ImageURL, "/api/v1/files/") {
		t.Fatalf("expected file-serving URL, got %s", created.ImageURL)
	}

	path := strings.TrimPrefix(created.ImageURL, "http://localhost:8080")
	reqGet := httptest.NewRequest(http.MethodGet, path, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
	if got := respGet.Body.String(); got != "fake image bytes" {
		t.Fatalf("unexpected served content: %q", got)
	}
}

func TestDocumentsUploadRequiresUserID(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadImage(t, router, "", "passport.jpg", []byte("x"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDocumentsServeUnknownKey(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/nope/missing.jpg", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
