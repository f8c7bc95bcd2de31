package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lessongen/internal/platform/apierr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body.String())
	}
	return env
}

func TestRespondFromError_APIError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondFromError(c, apierr.New(http.StatusBadRequest, "invalid_request", errors.New("topic is required")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Message != "topic is required" || env.Error.Code != "invalid_request" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondFromError_PlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondFromError(c, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status got=%d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error.Code != CodeInternal || env.Error.Message != "boom" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondError_NilErr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondError(c, http.StatusTeapot, "", nil)
	if env := decodeEnvelope(t, rec); env.Error.Message != "unknown error" {
		t.Fatalf("envelope = %+v", env)
	}
}
