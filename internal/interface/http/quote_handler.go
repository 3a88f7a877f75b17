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

// QuoteHandler covers the reduced quote lifecycle: quotes are created from
// the public site, listed and deleted by admins, never edited.
type QuoteHandler struct {
	Repo   repository.Collection[entity.PipeQuote]
	Logger *logrus.Logger
}

func NewQuoteHandler(repo repository.Collection[entity.PipeQuote], logger *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{Repo: repo, Logger: logger}
}

type createQuoteRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create handles POST /createQuote.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q := entity.PipeQuote{Message: req.Message}
	if err := h.Repo.Create(c.Request.Context(), &q); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, q, "quote created", nil)
}

// List handles GET /getQuotes.
func (h *QuoteHandler) List(c *gin.Context) {
	qs, err := h.Repo.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, qs, "quotes", nil)
}

// Delete handles DELETE /deleteQuote/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	q, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, q, "quote deleted", nil)
}
