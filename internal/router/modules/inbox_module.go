package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dilvertex/pipesite-backend/internal/container"
	handlers "github.com/dilvertex/pipesite-backend/internal/interface/http"
	"github.com/dilvertex/pipesite-backend/internal/interface/middleware"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

// InboxModule wires the inbound submissions: contact messages and quote
// requests. Quote routes keep their original root-level paths; only
// deletion is gated.

type InboxModule struct {
	Message *handlers.MessageHandler
	Quote   *handlers.QuoteHandler
	JWT     *helpers.JWTManager
}

func NewInboxModule(msg *handlers.MessageHandler, q *handlers.QuoteHandler, jwt *helpers.JWTManager) *InboxModule {
	return &InboxModule{Message: msg, Quote: q, JWT: jwt}
}

func (m *InboxModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())

	rg.POST("/createMessage", createLimiter, m.Message.Create)
	rg.PUT("/updateMessage/:id", m.Message.Update)
	rg.POST("/createQuote", createLimiter, m.Quote.Create)
	rg.GET("/getQuotes", m.Quote.List)

	gated := rg.Group("/")
	gated.Use(middleware.BearerAuth(m.JWT))
	{
		gated.DELETE("/deleteQuote/:id", m.Quote.Delete)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.BearerAuth(m.JWT))
	{
		admin.GET("/message", m.Message.List)
		admin.GET("/message/getMessage/:id", m.Message.Get)
		admin.DELETE("/message/deleteMessage/:id", m.Message.Delete)
	}
}
