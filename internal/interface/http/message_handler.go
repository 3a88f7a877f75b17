package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/response"
	"github.com/dilvertex/pipesite-backend/pkg/validation"
)

type MessageHandler struct {
	Repo   repository.Collection[entity.Message]
	Logger *logrus.Logger
}

func NewMessageHandler(repo repository.Collection[entity.Message], logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Repo: repo, Logger: logger}
}

type createMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Number  string `json:"number"`
	Message string `json:"message" binding:"required"`
}

// Create handles POST /createMessage, the public contact form.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg := entity.Message{
		Name:    req.Name,
		Email:   req.Email,
		Number:  req.Number,
		Message: req.Message,
	}
	if err := h.Repo.Create(c.Request.Context(), &msg); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, msg, "message created", nil)
}

// List handles GET /admin/message.
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.Repo.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, msgs, "messages", nil)
}

// Get handles GET /admin/message/getMessage/:id.
func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, msg, "message", nil)
}

// Update handles PUT /updateMessage/:id with merge semantics.
func (h *MessageHandler) Update(c *gin.Context) {
	patch, err := patchFromJSON(c, "name", "email", "number", "message")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	msg, err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, msg, "message updated", nil)
}

// Delete handles DELETE /admin/message/deleteMessage/:id.
func (h *MessageHandler) Delete(c *gin.Context) {
	msg, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, msg, "message deleted", nil)
}
