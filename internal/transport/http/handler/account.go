package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtunes/internal/app"
	"moodtunes/internal/transport/http/response"
)

// AccountHandler forwards signup and password-reset requests to the identity
// provider.
type AccountHandler struct {
	accountService *app.AccountService
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email,max=128"`
}

func NewAccountHandler(accountService *app.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.accountService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "signup failed")
		return
	}

	response.OK(c, gin.H{
		"uid":   result.UID,
		"token": result.Token,
	})
}

func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	link, err := h.accountService.PasswordResetLink(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err, "password reset failed")
		return
	}

	response.OK(c, gin.H{"link": link})
}

func (h *AccountHandler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrBadInput):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrUpstream):
		response.Fail(c, http.StatusBadGateway, err.Error())
	default:
		response.Fail(c, http.StatusInternalServerError, fallback)
	}
}
