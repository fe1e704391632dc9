package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

type App struct {
	config appConfig
	client *HLTVClient
	router *gin.Engine
}

func NewApp(config appConfig) *App {
	application := &App{
		config: config,
		client: NewHLTVClient(config.BaseURL, time.Duration(config.FetchTimeoutSecs)*time.Second),
		router: nil,
	}

	application.router = application.createRouter()

	return application
}

func (a *App) Start(ctx context.Context) error {
	return a.startAPI(ctx, a.config.ListenAddr)
}
