package router

import "github.com/gin-gonic/gin"

// Module is one slice of the site's HTTP surface (media, catalog, inbox,
// auth). Each registers its own routes on the group it is handed.
type Module interface {
	Register(rg *gin.RouterGroup)
}
