package controllers

import (
	"log"
	"net/http"

	"Socialnet/cache"
	"Socialnet/config"
	"Socialnet/database"
	"Socialnet/middlewares"
	"Socialnet/seed"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(cfg *config.Config) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	server.DB = db

	// Redis init (safe failure)
	if err := cache.Init(cfg.Redis); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	if cfg.SeedDemo {
		if err := seed.Load(server.DB); err != nil {
			log.Printf("error seeding demo data: %v", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	server.Router = gin.Default()
	server.useMiddlewares(cfg.Server.AllowedOrigins)
	server.initializeRoutes()
	return nil
}

func (server *Server) useMiddlewares(allowedOrigins []string) {
	server.Router.Use(middlewares.RequestIDMiddleware())
	server.Router.Use(middlewares.SentryMiddleware())
	server.Router.Use(middlewares.MetricsMiddleware())
	server.Router.Use(middlewares.CORSMiddleware(allowedOrigins))
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

// withTx runs fn as the request's unit of work: committed when fn returns
// nil, rolled back otherwise.
func (server *Server) withTx(c *gin.Context, fn func(tx *gorm.DB) error) error {
	return server.DB.WithContext(c.Request.Context()).Transaction(fn)
}
