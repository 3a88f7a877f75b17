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

type FittingHandler struct {
	Sync   *application.FileSyncer[entity.Fitting, *entity.Fitting]
	Logger *logrus.Logger
}

func NewFittingHandler(sync *application.FileSyncer[entity.Fitting, *entity.Fitting], logger *logrus.Logger) *FittingHandler {
	return &FittingHandler{Sync: sync, Logger: logger}
}

type createFittingRequest struct {
	Name string `form:"name" binding:"required"`
}

func fittingView(f entity.Fitting) gin.H {
	v := gin.H{
		"id":   f.ID,
		"name": f.Name,
	}
	if !f.File.IsZero() {
		v["fileUrl"] = f.File.URL
	}
	return v
}

// Create handles POST /createFitting. The catalogue image is mandatory.
func (h *FittingHandler) Create(c *gin.Context) {
	var req createFittingRequest
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
	f := entity.Fitting{Name: req.Name}
	if err := h.Sync.Create(c.Request.Context(), &f, up); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fittingView(f), "fitting created", nil)
}

// List handles GET /admin/fitting.
func (h *FittingHandler) List(c *gin.Context) {
	fs, err := h.Sync.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]gin.H, 0, len(fs))
	for _, f := range fs {
		out = append(out, fittingView(f))
	}
	response.Success(c, http.StatusOK, out, "fittings", nil)
}

// Get handles GET /admin/fitting/getFitting/:id.
func (h *FittingHandler) Get(c *gin.Context) {
	f, err := h.Sync.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fittingView(*f), "fitting", nil)
}

// Update handles PUT /updateFitting/:id. A new image replaces the old one.
func (h *FittingHandler) Update(c *gin.Context) {
	up, closer, err := uploadFromForm(c, "file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	patch := patchFromForm(c, "name")
	f, err := h.Sync.Update(c.Request.Context(), c.Param("id"), patch, up)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fittingView(*f), "fitting updated", nil)
}

// Delete handles DELETE /admin/fitting/deleteFitting/:id.
func (h *FittingHandler) Delete(c *gin.Context) {
	f, err := h.Sync.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fittingView(*f), "fitting deleted", nil)
}
