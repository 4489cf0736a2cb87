package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-report-backend/internal/assistant"
	"civic-report-backend/internal/gemini"
	"civic-report-backend/internal/handlers"
	"civic-report-backend/internal/models"
)

type fakeModel struct {
	calls int
	reply string
	err   error
}

func (f *fakeModel) Generate(ctx context.Context, instruction, message string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newChatRouter(model *fakeModel) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewChatHandler(assistant.NewRouter(assistant.DefaultRules, model))
	router := gin.New()
	router.POST("/api/chat", handler.Chat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat_MissingMessage(t *testing.T) {
	model := &fakeModel{}
	router := newChatRouter(model)

	for _, body := range []string{`{}`, `{"message": ""}`, `{"message": "   "}`, `{"other": "field"}`} {
		w := postChat(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "message is required")
	}
	assert.Equal(t, 0, model.calls)
}

func TestChat_CannedGreeting(t *testing.T) {
	model := &fakeModel{}
	router := newChatRouter(model)

	w := postChat(router, `{"message": "Hello!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assistant.GreetingReply, resp.Reply)
	assert.Equal(t, 0, model.calls)
}

func TestChat_ModelFallback(t *testing.T) {
	model := &fakeModel{reply: "Take a photo and submit it as a report."}
	router := newChatRouter(model)

	w := postChat(router, `{"message": "my road caved in, now what"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Take a photo and submit it as a report.", resp.Reply)
	assert.Equal(t, 1, model.calls)
}

func TestChat_VendorErrorPassesThrough(t *testing.T) {
	model := &fakeModel{err: &gemini.APIError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "Resource has been exhausted"}}
	router := newChatRouter(model)

	w := postChat(router, `{"message": "my road caved in, now what"}`)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 429, resp.Status)
	assert.Equal(t, "Resource has been exhausted", resp.Error)
}

func TestChat_TransportFailure(t *testing.T) {
	model := &fakeModel{err: assert.AnError}
	router := newChatRouter(model)

	w := postChat(router, `{"message": "my road caved in, now what"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "assistant service is unavailable")
}
