package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/pkg/response"
	"github.com/dilvertex/pipesite-backend/pkg/validation"
)

type ResourceHandler struct {
	Sync   *application.FileSyncer[entity.Resource, *entity.Resource]
	Logger *logrus.Logger
}

func NewResourceHandler(sync *application.FileSyncer[entity.Resource, *entity.Resource], logger *logrus.Logger) *ResourceHandler {
	return &ResourceHandler{Sync: sync, Logger: logger}
}

type createResourceRequest struct {
	Filename string `form:"filename" binding:"required"`
}

func resourceView(r entity.Resource) gin.H {
	v := gin.H{
		"id":       r.ID,
		"filename": r.Filename,
	}
	if !r.File.IsZero() {
		v["fileUrl"] = r.File.URL
	}
	return v
}

// Create handles POST /createResource. The document itself is mandatory.
func (h *ResourceHandler) Create(c *gin.Context) {
	var req createResourceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	up, closer, err := uploadFromForm(c, "file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if up == nil {
		response.Error[any](c, http.StatusBadRequest, "file is required", nil)
		return
	}
	r := entity.Resource{Filename: req.Filename}
	if err := h.Sync.Create(c.Request.Context(), &r, up); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, resourceView(r), "resource created", nil)
}

// List handles GET /admin/resource.
func (h *ResourceHandler) List(c *gin.Context) {
	rs, err := h.Sync.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]gin.H, 0, len(rs))
	for _, r := range rs {
		out = append(out, resourceView(r))
	}
	response.Success(c, http.StatusOK, out, "resources", nil)
}

// Get handles GET /admin/resource/getResource/:id.
func (h *ResourceHandler) Get(c *gin.Context) {
	r, err := h.Sync.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, resourceView(*r), "resource", nil)
}

// Update handles PUT /updateResource/:id.
func (h *ResourceHandler) Update(c *gin.Context) {
	up, closer, err := uploadFromForm(c, "file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	patch := patchFromForm(c, "filename")
	r, err := h.Sync.Update(c.Request.Context(), c.Param("id"), patch, up)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, resourceView(*r), "resource updated", nil)
}

// Delete handles DELETE /admin/resource/deleteResource/:id.
func (h *ResourceHandler) Delete(c *gin.Context) {
	r, err := h.Sync.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, resourceView(*r), "resource deleted", nil)
}
