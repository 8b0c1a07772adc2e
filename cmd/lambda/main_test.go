package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/cardprint/internal/config"
	"github.com/pricofy/cardprint/internal/domain"
	"github.com/pricofy/cardprint/internal/handler"
	"github.com/pricofy/cardprint/internal/logger"
)

func newTestFunction() *function {
	cfg := &config.Config{
		MaxCharsPerCard:    320,
		RebalanceThreshold: 60,
		LogLevel:           "info",
		Environment:        "test",
		RendererPrefix:     "cardprint-renderer",
	}
	return &function{handler: handler.New(cfg, logger.Nop()), log: logger.Nop()}
}

func TestHandleRequest_Paginates(t *testing.T) {
	f := newTestFunction()

	out, err := f.handleRequest(context.Background(), json.RawMessage(`{"text":"Hello world.","format":"text"}`))

	require.NoError(t, err)
	resp, ok := out.(*domain.PaginateResponse)
	require.True(t, ok, "unexpected response type %T", out)
	assert.Equal(t, 1, resp.CardCount)
	assert.Equal(t, "[1]\n    Hello world.\n", resp.Rendered)
}

func TestHandleRequest_Warmup(t *testing.T) {
	f := newTestFunction()

	out, err := f.handleRequest(context.Background(), json.RawMessage(`{"source":"warmup"}`))

	require.NoError(t, err)
	resp, ok := out.(*WarmupResponse)
	require.True(t, ok, "unexpected response type %T", out)
	assert.Equal(t, 1, resp.InstancesWarmed)
}

func TestHandleRequest_MalformedEvent(t *testing.T) {
	f := newTestFunction()

	_, err := f.handleRequest(context.Background(), json.RawMessage(`{"text":`))
	assert.Error(t, err)
}
