package handler

import (
	"github.com/photogear/camera-catalog/internal/config"
	"github.com/photogear/camera-catalog/internal/handler/http"
	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
