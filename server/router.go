package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller registers its routes on a versioned group.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router owns the gin engine and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
}

// Config holds settings for NewRouter.
type Config struct {
	Addr        string // address to listen on
	BaseURL     string // prefix for every route, may be empty
	Controllers []Controller
}

// NewRouter creates a Router from config.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine with every controller mounted under
// <baseURL>/v1, plus GET /healthz.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Server returns an *http.Server bound to the router's address.
func (r *Router) Server() *http.Server {
	return &http.Server{Addr: r.addr, Handler: r.Handler()}
}
