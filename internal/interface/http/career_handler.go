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

type CareerHandler struct {
	Repo   repository.Collection[entity.Career]
	Logger *logrus.Logger
}

func NewCareerHandler(repo repository.Collection[entity.Career], logger *logrus.Logger) *CareerHandler {
	return &CareerHandler{Repo: repo, Logger: logger}
}

type createCareerRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	JobType     string `json:"jobType" binding:"omitempty,oneof='Full time' 'Part time'"`
	Salary      string `json:"salary"`
	Experience  string `json:"experience"`
	Position    string `json:"position"`
	Deadline    string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Role        string `json:"role"`
	Requirement string `json:"requirement"`
}

// Create handles POST /createCareer.
func (h *CareerHandler) Create(c *gin.Context) {
	var req createCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	career := entity.Career{
		Title:       req.Title,
		Description: req.Description,
		JobType:     req.JobType,
		Salary:      req.Salary,
		Experience:  req.Experience,
		Position:    req.Position,
		Deadline:    req.Deadline,
		Role:        req.Role,
		Requirement: req.Requirement,
	}
	if err := h.Repo.Create(c.Request.Context(), &career); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, career, "career created", nil)
}

// List handles GET /admin/career.
func (h *CareerHandler) List(c *gin.Context) {
	careers, err := h.Repo.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, careers, "careers", nil)
}

// Get handles GET /admin/career/getCareer/:id.
func (h *CareerHandler) Get(c *gin.Context) {
	career, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, career, "career", nil)
}

// Update handles PUT /updateCareer/:id with merge semantics.
func (h *CareerHandler) Update(c *gin.Context) {
	patch, err := patchFromJSON(c, "title", "description", "jobType", "salary",
		"experience", "position", "deadline", "role", "requirement")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	career, err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, career, "career updated", nil)
}

// Delete handles DELETE /admin/career/deleteCareer/:id.
func (h *CareerHandler) Delete(c *gin.Context) {
	career, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, career, "career deleted", nil)
}
