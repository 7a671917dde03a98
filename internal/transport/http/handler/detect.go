package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtunes/internal/app"
	"moodtunes/internal/transport/http/middleware"
	"moodtunes/internal/transport/http/response"
	"moodtunes/internal/vision"
)

const maxImageSize = 5 << 20 // 5 MB

// DetectHandler handles emotion detection uploads.
type DetectHandler struct {
	detectService *app.DetectService
}

func NewDetectHandler(detectService *app.DetectService) *DetectHandler {
	return &DetectHandler{detectService: detectService}
}

// Detect accepts a multipart form with an "image" file, classifies the
// depicted emotion, and returns the label.
func (h *DetectHandler) Detect(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "missing image file (form field 'image')")
		return
	}

	if file.Size > maxImageSize {
		response.Fail(c, http.StatusBadRequest, "image too large (max 5MB)")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "failed to read image")
		return
	}

	emotion, err := h.detectService.Detect(c.Request.Context(), data, c.GetString(middleware.ContextUIDKey))
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrDecode), errors.Is(err, vision.ErrPreprocess), errors.Is(err, vision.ErrShape):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrModelUnavailable):
			response.Fail(c, http.StatusServiceUnavailable, "emotion model is not available, try again later")
		default:
			response.Fail(c, http.StatusInternalServerError, "emotion detection failed")
		}
		return
	}

	response.OK(c, gin.H{"emotion": string(emotion)})
}
