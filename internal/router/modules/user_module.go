package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilvertex/pipesite-backend/internal/container"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/interface/middleware"
)

// UserModule wires the site-visitor account flow: register, verify email,
// login.

type UserModule struct {
	Handler *handlers.UserAuthHandler
}

func NewUserModule(h *handlers.UserAuthHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/register", limiter, m.Handler.Register)
	rg.POST("/login", limiter, m.Handler.Login)
	rg.GET("/verify-email/:token", m.Handler.VerifyEmail)
}
