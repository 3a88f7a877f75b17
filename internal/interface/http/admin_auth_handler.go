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

type AdminAuthHandler struct {
	Svc    *application.AdminService
	Audit  *postgres.AuditLogger
	Logger *logrus.Logger
}

func NewAdminAuthHandler(svc *application.AdminService, audit *postgres.AuditLogger, logger *logrus.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{Svc: svc, Audit: audit, Logger: logger}
}

type adminCredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,pwd"`
}

func (h *AdminAuthHandler) audit(c *gin.Context, userID, action string) {
	if h.Audit == nil {
		return
	}
	entry := postgres.AuditEntry{
		UserID:    userID,
		Action:    action,
		IP:        clientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.Audit.Record(c.Request.Context(), entry); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("audit record failed")
	}
}

// Signup handles POST /admin/signup.
func (h *AdminAuthHandler) Signup(c *gin.Context) {
	var req adminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	admin, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.audit(c, admin.ID, "admin_signup")
	response.Success(c, http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	}, "admin created", nil)
}

// Login handles POST /admin/login. The token is returned in the body and
// mirrored into a cookie for browser clients.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req adminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	admin, token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.audit(c, "", "admin_login_failed")
		writeError(c, h.Logger, err)
		return
	}
	h.audit(c, admin.ID, "admin_login")
	c.SetCookie("access_token", token, int(time.Until(exp).Seconds()), "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
	}, "login successful", nil)
}
