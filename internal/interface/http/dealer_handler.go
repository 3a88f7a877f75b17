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

type DealerHandler struct {
	Repo   repository.Collection[entity.Dealer]
	Logger *logrus.Logger
}

func NewDealerHandler(repo repository.Collection[entity.Dealer], logger *logrus.Logger) *DealerHandler {
	return &DealerHandler{Repo: repo, Logger: logger}
}

type createDealerRequest struct {
	Name     string   `json:"name" binding:"required"`
	Mobile   string   `json:"mobile" binding:"required"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Role     string   `json:"role" binding:"omitempty,oneof=dealer project_owner constructor designer"`
	Products []string `json:"products" binding:"omitempty,dive,oneof=HDPE LDPE 'Fitting and Accessories'"`
	Province string   `json:"province"`
}

// Create handles POST /createDealer, the public partner registration form.
func (h *DealerHandler) Create(c *gin.Context) {
	var req createDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	dealer := entity.Dealer{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Email:    req.Email,
		Role:     req.Role,
		Products: req.Products,
		Province: req.Province,
	}
	if err := h.Repo.Create(c.Request.Context(), &dealer); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, dealer, "dealer created", nil)
}

// List handles GET /admin/dealer.
func (h *DealerHandler) List(c *gin.Context) {
	dealers, err := h.Repo.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, dealers, "dealers", nil)
}

// Get handles GET /admin/dealer/getDealer/:id.
func (h *DealerHandler) Get(c *gin.Context) {
	dealer, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, dealer, "dealer", nil)
}

// Update handles PUT /updateDealer/:id with merge semantics.
func (h *DealerHandler) Update(c *gin.Context) {
	patch, err := patchFromJSON(c, "name", "mobile", "email", "role", "products", "province")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	dealer, err := h.Repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, dealer, "dealer updated", nil)
}

// Delete handles DELETE /admin/dealer/deleteDealer/:id.
func (h *DealerHandler) Delete(c *gin.Context) {
	dealer, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, dealer, "dealer deleted", nil)
}
