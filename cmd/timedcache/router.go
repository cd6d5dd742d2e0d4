package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/huynhanx03/go-timedcache/pkg/settings"
)

type lengther interface {
	Len() int
}

func newRouter(cfg settings.Server, reg *prometheus.Registry, c lengther) *gin.Engine {
	gin.SetMode(cfg.Mode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "entries": c.Len()})
	})

	return r
}
