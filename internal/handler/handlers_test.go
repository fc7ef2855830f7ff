package handler

import (
	"testing"

	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddressConfigured(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = "localhost:8080"

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressIsAnError(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
