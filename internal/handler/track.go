package handler

import (
	"errors"
	"net/http"

	"pulse/internal/model"
	"pulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DomainKeyHeader carries the shared secret when key restriction is enabled
const DomainKeyHeader = "X-Domain-Key"

// TrackHandler handles tracking ingestion
type TrackHandler struct {
	tracker service.TrackerServiceInterface
}

// NewTrackHandler creates a new TrackHandler
func NewTrackHandler(tracker service.TrackerServiceInterface) *TrackHandler {
	return &TrackHandler{tracker: tracker}
}

// Track handles POST /api/webhook and POST /api/event
// @Summary Ingest a pageview or custom event
// @Description Authenticates the site, applies privacy rules and updates aggregate counters
// @Tags tracking
// @Accept json
// @Produce json
// @Param X-Domain-Key header string false "Domain key (required when key restriction is enabled)"
// @Param request body model.TrackRequest true "Tracking request"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/webhook [post]
func (h *TrackHandler) Track(c *gin.Context) {
	var req model.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "Invalid request: " + err.Error(),
		})
		return
	}

	err := h.tracker.Track(c.Request.Context(), &req, c.GetHeader(DomainKeyHeader))
	if err != nil {
		status, message := rejectionStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("domain", req.Domain).Msg("Tracking request failed")
		}
		c.JSON(status, ErrorResponse{Error: message})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "success"})
}

// rejectionStatus maps pipeline rejections to HTTP responses
func rejectionStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrSiteNotFound), errors.Is(err, service.ErrTrackingDisabled):
		return http.StatusNotFound, "Website not found or tracking disabled"
	case errors.Is(err, service.ErrInvalidDomainKey):
		return http.StatusForbidden, "Invalid domain key"
	case errors.Is(err, service.ErrIPExcluded):
		return http.StatusForbidden, "IP address excluded"
	case errors.Is(err, service.ErrBotExcluded):
		return http.StatusForbidden, "Bot traffic excluded"
	default:
		return http.StatusInternalServerError, "Failed to record event"
	}
}

// Response is the standard API response
type Response struct {
	Status string `json:"status"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Error string `json:"error"`
}
