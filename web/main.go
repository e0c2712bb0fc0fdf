package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"timeclock.app/timeclock/config"
	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/web/handlers"
	"timeclock.app/timeclock/web/middlewares"
)

func main() {
	cfg := config.Load()
	loc := cfg.Location()
	log.Printf("using timezone: %s", loc)

	dm, err := core.New(cfg.DSN, cfg.MaxConnections, core.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	if cfg.SigningSecret != "" {
		jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
		if err != nil {
			log.Fatal("Failed to decode JWT secret:", err)
		}
		api.Use(middlewares.Authentication(jwtSecret))
	}
	handlers.Register(api, dm, loc)

	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")

	r.NoRoute(func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Redirect(http.StatusFound, "/")
			return
		}
	})

	r.Run(cfg.Addr)
}
