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

type EmployeeHandler struct {
	Sync   *application.FileSyncer[entity.Employee, *entity.Employee]
	Logger *logrus.Logger
}

func NewEmployeeHandler(sync *application.FileSyncer[entity.Employee, *entity.Employee], logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{Sync: sync, Logger: logger}
}

type createEmployeeRequest struct {
	Name       string `form:"name" binding:"required"`
	Department string `form:"department"`
	JobTitle   string `form:"jobTitle"`
	Email      string `form:"email" binding:"omitempty,email"`
	Telegram   string `form:"telegram"`
}

func employeeView(e entity.Employee) gin.H {
	v := gin.H{
		"id":         e.ID,
		"name":       e.Name,
		"department": e.Department,
		"jobTitle":   e.JobTitle,
		"email":      e.Email,
		"telegram":   e.Telegram,
	}
	if !e.File.IsZero() {
		v["fileUrl"] = e.File.URL
	}
	return v
}

// Create handles POST /createEmployee (multipart). The photo is optional.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
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

	e := entity.Employee{
		Name:       req.Name,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		Email:      req.Email,
		Telegram:   req.Telegram,
	}
	if err := h.Sync.Create(c.Request.Context(), &e, up); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, employeeView(e), "employee created", nil)
}

// List handles GET /admin/employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	es, err := h.Sync.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]gin.H, 0, len(es))
	for _, e := range es {
		out = append(out, employeeView(e))
	}
	response.Success(c, http.StatusOK, out, "employees", nil)
}

// Get handles GET /admin/employee/getUser/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	e, err := h.Sync.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, employeeView(*e), "employee", nil)
}

// Update handles PUT /updateEmployee/:id. Only fields present in the form
// overwrite; an absent file part leaves the stored photo untouched.
func (h *EmployeeHandler) Update(c *gin.Context) {
	up, closer, err := uploadFromForm(c, "file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	patch := patchFromForm(c, "name", "department", "jobTitle", "email", "telegram")
	e, err := h.Sync.Update(c.Request.Context(), c.Param("id"), patch, up)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, employeeView(*e), "employee updated", nil)
}

// Delete handles DELETE /admin/employee/deleteUser/:id. The photo is
// removed with the record.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	e, err := h.Sync.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, employeeView(*e), "employee deleted", nil)
}
