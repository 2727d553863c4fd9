package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateLearningContentBadJSON(t *testing.T) {
	c := NewLearningController(service.NewJobService(nil, nil, nil))

	w := postJSON(t, c.GenerateLearningContent, "/api/generate-learning-content", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGenerateLearningContentMissingFields(t *testing.T) {
	c := NewLearningController(service.NewJobService(nil, nil, nil))

	w := postJSON(t, c.GenerateLearningContent, "/api/generate-learning-content",
		`{"topic":"Go"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing required fields", w.Code)
	}
}

func TestGenerateLearningContentInvalidDifficulty(t *testing.T) {
	c := NewLearningController(service.NewJobService(nil, nil, nil))

	w := postJSON(t, c.GenerateLearningContent, "/api/generate-learning-content",
		`{"topic":"Go","subTopics":["basics"],"difficulty":"expert"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown difficulty", w.Code)
	}
}

func TestGenerateLearningContentTooManySubtopics(t *testing.T) {
	c := NewLearningController(service.NewJobService(nil, nil, nil))

	subs := strings.Repeat(`"s",`, 11)
	w := postJSON(t, c.GenerateLearningContent, "/api/generate-learning-content",
		`{"topic":"Go","subTopics":[`+subs[:len(subs)-1]+`],"difficulty":"beginner"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for more than 10 subtopics", w.Code)
	}
}
