package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moodtunes/internal/model"
	"moodtunes/internal/transport/http/middleware"
	"moodtunes/internal/transport/http/response"
)

// DetectionLister reads back recorded detections for a user.
type DetectionLister interface {
	ListByUID(uid string, limit int) ([]model.Detection, error)
}

// HistoryHandler serves a user's recent detection records.
type HistoryHandler struct {
	detections DetectionLister
}

func NewHistoryHandler(detections DetectionLister) *HistoryHandler {
	return &HistoryHandler{detections: detections}
}

func (h *HistoryHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.ContextUIDKey)
	if uid == "" {
		response.Fail(c, http.StatusUnauthorized, "missing session")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	detections, err := h.detections.ListByUID(uid, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "fetch detection history failed")
		return
	}

	response.OK(c, gin.H{"detections": detections})
}
