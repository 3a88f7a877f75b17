package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilvertex/pipesite-backend/internal/container"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/interface/middleware"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

// CatalogModule wires the plain document variants: careers, dealers and
// videos.

type CatalogModule struct {
	Career *handlers.CareerHandler
	Dealer *handlers.DealerHandler
	Video  *handlers.VideoHandler
	JWT    *helpers.JWTManager
}

func NewCatalogModule(c *handlers.CareerHandler, d *handlers.DealerHandler, v *handlers.VideoHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Career: c, Dealer: d, Video: v, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())

	rg.POST("/createCareer", createLimiter, m.Career.Create)
	rg.PUT("/updateCareer/:id", m.Career.Update)
	rg.POST("/createDealer", createLimiter, m.Dealer.Create)
	rg.PUT("/updateDealer/:id", m.Dealer.Update)
	rg.POST("/createVideo", createLimiter, m.Video.Create)
	rg.PUT("/updateVideo/:id", m.Video.Update)

	admin := rg.Group("/admin")
	admin.Use(middleware.BearerAuth(m.JWT))
	{
		admin.GET("/career", m.Career.List)
		admin.GET("/career/getCareer/:id", m.Career.Get)
		admin.DELETE("/career/deleteCareer/:id", m.Career.Delete)

		admin.GET("/dealer", m.Dealer.List)
		admin.GET("/dealer/getDealer/:id", m.Dealer.Get)
		admin.DELETE("/dealer/deleteDealer/:id", m.Dealer.Delete)

		admin.GET("/video", m.Video.List)
		admin.GET("/video/getVideo/:id", m.Video.Get)
		admin.DELETE("/video/deleteVideo/:id", m.Video.Delete)
	}
}
