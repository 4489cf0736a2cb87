package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"civic-report-backend/internal/database"
	"civic-report-backend/internal/models"
	"civic-report-backend/internal/supabase"
)

type ReportHandler struct {
	repo     database.IssueRepository
	store    supabase.MediaStore
	realtime *supabase.RealtimeClient
}

func NewReportHandler(repo database.IssueRepository, store supabase.MediaStore, realtime *supabase.RealtimeClient) *ReportHandler {
	return &ReportHandler{
		repo:     repo,
		store:    store,
		realtime: realtime,
	}
}

// Submit godoc
// @Summary     Submit a civic issue report
// @Description Stores the attached photo in the media store, inserts the issue record and returns the generated ticket ID.
// @Tags        reports
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Photo of the issue"
// @Param       description formData string false "Free-text description"
// @Param       category formData string false "Issue category"
// @Param       lat formData string false "Latitude"
// @Param       lon formData string false "Longitude"
// @Success     200 {object} models.SubmitReportResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/report [post]
func (h *ReportHandler) Submit(c *gin.Context) {
	// The image is mandatory; reject before any storage side effect.
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image file"})
		return
	}

	key, err := h.store.Upload(fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Failed to store image: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store image"})
		return
	}

	issue, err := h.repo.CreateIssue(c.Request.Context(), database.CreateIssueParams{
		Filename:     key,
		OriginalName: fileHeader.Filename,
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		Lat:          parseCoord(c.PostForm("lat")),
		Lon:          parseCoord(c.PostForm("lon")),
	})
	if err != nil {
		log.Printf("Failed to save report: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save report"})
		return
	}

	ticketID := models.TicketID(issue.ID)
	if h.realtime != nil {
		if err := h.realtime.PublishIssueCreated(supabase.IssueCreatedPayload(issue.ID, ticketID, c.PostForm("category"))); err != nil {
			log.Printf("Failed to publish issue event: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.SubmitReportResponse{
		Success:  true,
		ID:       issue.ID,
		TicketID: ticketID,
		ImageURL: UploadsPathPrefix + issue.Filename,
	})
}

// List godoc
// @Summary     List reported issues
// @Description Returns all issues, most recent first.
// @Tags        reports
// @Produce     json
// @Success     200 {array} models.IssueResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	issues, err := h.repo.ListIssues(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list issues: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list reports"})
		return
	}

	responses := make([]models.IssueResponse, len(issues))
	for i, issue := range issues {
		responses[i] = toIssueResponse(issue)
	}

	c.JSON(http.StatusOK, responses)
}

// Count godoc
// @Summary     Count reported issues
// @Tags        reports
// @Produce     json
// @Success     200 {object} models.CountResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/count [get]
func (h *ReportHandler) Count(c *gin.Context) {
	count, err := h.repo.CountIssues(c.Request.Context())
	if err != nil {
		log.Printf("Failed to count issues: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to count reports"})
		return
	}

	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}

func toIssueResponse(issue database.Issue) models.IssueResponse {
	resp := models.IssueResponse{
		ID:        issue.ID,
		Filename:  issue.Filename,
		Status:    issue.Status,
		ImageURL:  UploadsPathPrefix + issue.Filename,
		CreatedAt: issue.CreatedAt,
	}
	if issue.OriginalName.Valid {
		resp.OriginalName = issue.OriginalName.String
	}
	if issue.Description.Valid {
		resp.Description = issue.Description.String
	}
	if issue.Category.Valid {
		resp.Category = issue.Category.String
	}
	if issue.Lat.Valid {
		lat := issue.Lat.Float64
		resp.Lat = &lat
	}
	if issue.Lon.Valid {
		lon := issue.Lon.Float64
		resp.Lon = &lon
	}
	return resp
}

// parseCoord coerces an optional form value into a coordinate. Absent or
// unparseable values are stored as NULL rather than rejected.
func parseCoord(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
