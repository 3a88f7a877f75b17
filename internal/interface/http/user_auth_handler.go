package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/infrastructure/postgres"
	"github.com/dilvertex/pipesite-backend/pkg/response"
	"github.com/dilvertex/pipesite-backend/pkg/validation"
)

type UserAuthHandler struct {
	Svc    *application.UserService
	Audit  *postgres.AuditLogger
	Logger *logrus.Logger
}

func NewUserAuthHandler(svc *application.UserService, audit *postgres.AuditLogger, logger *logrus.Logger) *UserAuthHandler {
	return &UserAuthHandler{Svc: svc, Audit: audit, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserAuthHandler) audit(c *gin.Context, userID, email, action string) {
	if h.Audit == nil {
		return
	}
	entry := postgres.AuditEntry{
		UserID:    userID,
		Email:     email,
		Action:    action,
		IP:        clientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.Audit.Record(c.Request.Context(), entry); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("audit record failed")
	}
}

// Register handles POST /register. The verification mail goes out through
// the queue; registration never fails because of it.
func (h *UserAuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.audit(c, user.ID, user.Email, "user_register")
	response.Success(c, http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}, "registered, please verify your email", nil)
}

// VerifyEmail handles GET /verify-email/:token. The token is single use.
func (h *UserAuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.Svc.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.audit(c, "", "", "user_verify_email")
	response.Success[any](c, http.StatusOK, nil, "email verified", nil)
}

// Login handles POST /login.
func (h *UserAuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.audit(c, "", req.Email, "user_login_failed")
		writeError(c, h.Logger, err)
		return
	}
	h.audit(c, user.ID, user.Email, "user_login")
	c.SetCookie("access_token", token, int(time.Until(exp).Seconds()), "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	}, "login successful", nil)
}
