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

type VideoHandler struct {
	Repo   repository.Collection[entity.Video]
	Logger *logrus.Logger
}

func NewVideoHandler(repo repository.Collection[entity.Video], logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Repo: repo, Logger: logger}
}

type createVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" binding:"required,url"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Create handles POST /createVideo.
func (h *VideoHandler) Create(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v := entity.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Date:        req.Date,
	}
	if err := h.Repo.Create(c.Request.Context(), &v); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video created", nil)
}

// List handles GET /admin/video.
func (h *VideoHandler) List(c *gin.Context) {
	vs, err := h.Repo.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, vs, "videos", nil)
}

// Get handles GET /admin/video/getVideo/:id.
func (h *VideoHandler) Get(c *gin.Context) {
	v, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video", nil)
}

// Update handles PUT /updateVideo/:id with merge semantics.
func (h *VideoHandler) Update(c *gin.Context) {
	patch, err := patchFromJSON(c, "title", "description", "videoUrl", "date")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	v, err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated", nil)
}

// Delete handles DELETE /admin/video/deleteVideo/:id.
func (h *VideoHandler) Delete(c *gin.Context) {
	v, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video deleted", nil)
}
