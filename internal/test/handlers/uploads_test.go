package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"civic-report-backend/internal/handlers"
)

func newUploadsRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/uploads/*key", handlers.NewUploadsHandler(store).Get)
	return router
}

func TestUploads_RedirectsToPublicURL(t *testing.T) {
	store := &fakeStore{}
	router := newUploadsRouter(store)

	req, _ := http.NewRequest("GET", "/uploads/issues/key-1.jpg", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, store.PublicURL("issues/key-1.jpg"), w.Header().Get("Location"))
}

func TestUploads_RejectsTraversal(t *testing.T) {
	router := newUploadsRouter(&fakeStore{})

	req, _ := http.NewRequest("GET", "/uploads/..%2fsecret", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
