package handler

import (
	"net/http"

	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("signup", h.SignUp)
		router.POST("signin", h.SignIn)
		router.POST("password-reset", h.RequestPasswordReset)
		router.POST("password-reset/confirm", h.ResetPassword)
		router.POST("verification/confirm", h.VerifyEmail)
	}

	authed := router.Group("", RequireSession(h.service))
	{
		authed.POST("signout", h.SignOut)
		authed.GET("me", h.Me)
		authed.POST("verification", h.SendVerification)
	}
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.service.SignUp(c, req.Email, req.Password)
	if err != nil {
		handleError(c, err, "SignUp")
		return
	}

	handleSuccess(c, session, http.StatusCreated)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.service.SignIn(c, req.Email, req.Password)
	if err != nil {
		handleError(c, err, "SignIn")
		return
	}

	handleSuccess(c, session, http.StatusOK)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.service.SignOut(c, sessionFrom(c).Token); err != nil {
		handleError(c, err, "SignOut")
		return
	}

	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c, sessionFrom(c).User.ID)
	if err != nil {
		handleError(c, err, "Me")
		return
	}

	handleSuccess(c, user, http.StatusOK)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.RequestPasswordReset(c, req.Email); err != nil {
		handleError(c, err, "RequestPasswordReset")
		return
	}

	handleSuccess(c, nil, http.StatusAccepted)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.ResetPassword(c, req.Token, req.Password); err != nil {
		handleError(c, err, "ResetPassword")
		return
	}

	handleSuccess(c, nil, http.StatusNoContent)
}

func (h *AuthHandler) SendVerification(c *gin.Context) {
	if err := h.service.SendEmailVerification(c, sessionFrom(c).User); err != nil {
		handleError(c, err, "SendVerification")
		return
	}

	handleSuccess(c, nil, http.StatusAccepted)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.VerifyEmail(c, req.Token); err != nil {
		handleError(c, err, "VerifyEmail")
		return
	}

	handleSuccess(c, nil, http.StatusNoContent)
}
