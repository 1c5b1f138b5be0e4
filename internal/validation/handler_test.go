package validation

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"datecheck-backend/internal/settings"
	"datecheck-backend/internal/shared/telemetry"
)

func testRouter(t *testing.T, runs Repo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(settings.NewService(settings.NewMemoryRepo(), telemetry.NopSink{}), runs, telemetry.NopSink{})
	svc.now = func() time.Time { return testNow }
	svc.parser.Now = func() time.Time { return testNow }

	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(svc, runs).RegisterRoutes(api)
	return router
}

func TestValidateEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	body := `{"text":"EDUCATION\nBachelor of Computer Science, University of Technology, September 2018 - May 2022\n"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var res Result
	if err := json.Unmarshal(resp.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.IsValid {
		t.Fatalf("expected a valid result, got %+v", res)
	}
}

func TestValidateEndpoint_BadBody(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestValidateEndpoint_EmptyTextIsOK(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var res Result
	if err := json.Unmarshal(resp.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.IsValid || len(res.Warnings) != 1 {
		t.Fatalf("expected valid result with one warning, got %+v", res)
	}
}

func TestValidateFileEndpoint_PlainText(t *testing.T) {
	router := testRouter(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("EXPERIENCE\nEngineer, Acme Corp, Jan 2020 - Jan 2022\n")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var res Result
	if err := json.Unmarshal(resp.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.IsValid {
		t.Fatalf("expected a valid result, got %+v", res)
	}
}

func TestValidateFileEndpoint_MissingFile(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/file", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestRunLookupEndpoints(t *testing.T) {
	runs := NewMemoryRepo()
	router := testRouter(t, runs)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(`{"text":"EDUCATION\nBachelor, City College, 2015 - 2019\n"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("validate status = %d", resp.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/validations", nil)
	listResp := httptest.NewRecorder()
	router.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list status = %d", listResp.Code)
	}
	var listed []Run
	if err := json.Unmarshal(listResp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed = %+v, want one run", listed)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+listed[0].ID.String(), nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("get status = %d", getResp.Code)
	}

	badReq := httptest.NewRequest(http.MethodGet, "/api/v1/validations/not-a-uuid", nil)
	badResp := httptest.NewRecorder()
	router.ServeHTTP(badResp, badReq)
	if badResp.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", badResp.Code)
	}

	missingReq := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+uuid.NewString(), nil)
	missingResp := httptest.NewRecorder()
	router.ServeHTTP(missingResp, missingReq)
	if missingResp.Code != http.StatusNotFound {
		t.Fatalf("missing id status = %d, want 404", missingResp.Code)
	}
}
