package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtunes/internal/app"
	"moodtunes/internal/transport/http/response"
)

// RecommendHandler handles track recommendation requests.
type RecommendHandler struct {
	recommendService *app.RecommendService
}

type RecommendRequest struct {
	Emotion  string `json:"emotion"`
	Language string `json:"language"`
	Artist   string `json:"artist"`
}

func NewRecommendHandler(recommendService *app.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendService: recommendService}
}

// Recommend takes an emotion label plus optional language/artist preferences
// and returns matching tracks from the catalog.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	tracks, err := h.recommendService.Recommend(c.Request.Context(), app.RecommendInput{
		Emotion:  req.Emotion,
		Language: req.Language,
		Artist:   req.Artist,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrBadInput):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUpstream):
			response.Fail(c, http.StatusInternalServerError, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "recommendation failed")
		}
		return
	}

	response.OK(c, gin.H{"songs": tracks})
}
