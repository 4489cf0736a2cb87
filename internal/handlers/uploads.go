package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civic-report-backend/internal/models"
	"civic-report-backend/internal/supabase"
)

// UploadsPathPrefix is the stable public path images are served under.
// Records reference it through their imageUrl even if the bucket moves.
const UploadsPathPrefix = "/uploads/"

type UploadsHandler struct {
	store supabase.MediaStore
}

func NewUploadsHandler(store supabase.MediaStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Get godoc
// @Summary     Fetch an uploaded image
// @Description Redirects to the public object URL for the given storage key.
// @Tags        uploads
// @Param       key path string true "Storage key"
// @Success     302
// @Failure     400 {object} models.ErrorResponse
// @Router      /uploads/{key} [get]
func (h *UploadsHandler) Get(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid storage key"})
		return
	}

	c.Redirect(http.StatusFound, h.store.PublicURL(key))
}
