// Package main is the entry point for the card paginator Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/pricofy/cardprint/internal/config"
	"github.com/pricofy/cardprint/internal/domain"
	"github.com/pricofy/cardprint/internal/handler"
	"github.com/pricofy/cardprint/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	f := &function{handler: handler.New(cfg, zl), log: zl}
	lambda.Start(f.handleRequest)
}

type function struct {
	handler *handler.Handler
	log     *zap.Logger
}

func (f *function) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup, f.log)
	}

	var req domain.PaginateRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return f.handler.Handle(ctx, req)
}
