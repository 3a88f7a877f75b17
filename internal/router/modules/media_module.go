package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilvertex/pipesite-backend/internal/container"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/interface/middleware"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

// MediaModule wires the file-backed content variants: employees, news,
// fittings and resources. Creates and updates are public (the site's CMS
// forms post straight here), reads and deletes live under /admin.

type MediaModule struct {
	Employee *handlers.EmployeeHandler
	News     *handlers.NewsHandler
	Fitting  *handlers.FittingHandler
	Resource *handlers.ResourceHandler
	JWT      *helpers.JWTManager
}

func NewMediaModule(e *handlers.EmployeeHandler, n *handlers.NewsHandler, f *handlers.FittingHandler, r *handlers.ResourceHandler, jwt *helpers.JWTManager) *MediaModule {
	return &MediaModule{Employee: e, News: n, Fitting: f, Resource: r, JWT: jwt}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())

	rg.POST("/createEmployee", createLimiter, m.Employee.Create)
	rg.PUT("/updateEmployee/:id", m.Employee.Update)
	rg.POST("/createNews", createLimiter, m.News.Create)
	rg.PUT("/updateNews/:id", m.News.Update)
	rg.GET("/searchNews", m.News.Search)
	rg.POST("/createFitting", createLimiter, m.Fitting.Create)
	rg.PUT("/updateFitting/:id", m.Fitting.Update)
	rg.POST("/createResource", createLimiter, m.Resource.Create)
	rg.PUT("/updateResource/:id", m.Resource.Update)

	admin := rg.Group("/admin")
	admin.Use(middleware.BearerAuth(m.JWT))
	{
		admin.GET("/employee", m.Employee.List)
		admin.GET("/employee/getUser/:id", m.Employee.Get)
		admin.DELETE("/employee/deleteUser/:id", m.Employee.Delete)

		admin.GET("/news", m.News.List)
		admin.GET("/news/getNews/:id", m.News.Get)
		admin.DELETE("/news/deleteNews/:id", m.News.Delete)

		admin.GET("/fitting", m.Fitting.List)
		admin.GET("/fitting/getFitting/:id", m.Fitting.Get)
		admin.DELETE("/fitting/deleteFitting/:id", m.Fitting.Delete)

		admin.GET("/resource", m.Resource.List)
		admin.GET("/resource/getResource/:id", m.Resource.Get)
		admin.DELETE("/resource/deleteResource/:id", m.Resource.Delete)
	}
}
