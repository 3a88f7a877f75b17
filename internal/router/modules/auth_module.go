package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilvertex/pipesite-backend/internal/container"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/interface/middleware"
)

// AuthModule wires the admin credential endpoints. Both stay public so a
// fresh deployment can bootstrap its first admin.

type AuthModule struct {
	Handler *handlers.AdminAuthHandler
}

func NewAuthModule(h *handlers.AdminAuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/admin/signup", limiter, m.Handler.Signup)
	rg.POST("/admin/login", limiter, m.Handler.Login)
}
