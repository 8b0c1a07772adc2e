// Package handler provides the Lambda handler for the card paginator.
package handler

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pricofy/cardprint/internal/cards"
	"github.com/pricofy/cardprint/internal/config"
	"github.com/pricofy/cardprint/internal/domain"
	"github.com/pricofy/cardprint/internal/render"
	"github.com/pricofy/cardprint/internal/router"
)

// RemoteRenderer renders a document in a downstream function.
type RemoteRenderer interface {
	Render(ctx context.Context, format string, doc cards.Document) (string, error)
}

// Handler paginates text and renders the result.
type Handler struct {
	cfg       *config.Config
	log       *zap.Logger
	newRouter func(ctx context.Context) (RemoteRenderer, error)
}

// New creates a Handler. The router is only built for requests that need a
// downstream renderer.
func New(cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		log: log,
		newRouter: func(ctx context.Context) (RemoteRenderer, error) {
			return router.New(ctx, cfg.RendererPrefix, cfg.Environment)
		},
	}
}

// Handle processes a pagination request.
// Request problems are reported in Response.Error; the returned error is
// always nil so the caller gets a well-formed payload.
func (h *Handler) Handle(ctx context.Context, req domain.PaginateRequest) (*domain.PaginateResponse, error) {
	resp := &domain.PaginateResponse{RequestID: requestID(ctx)}
	log := h.log.With(zap.String("requestId", resp.RequestID))

	if err := validateRequest(req); err != nil {
		log.Warn("rejected request", zap.Error(err))
		resp.Error = err.Error()
		return resp, nil
	}

	maxChars := req.MaxCharsPerCard
	if maxChars == 0 {
		maxChars = h.cfg.MaxCharsPerCard
	}
	threshold := h.cfg.RebalanceThreshold
	if req.RebalanceThreshold != nil {
		threshold = *req.RebalanceThreshold
	}

	doc, err := cards.Paginate(req.Text, maxChars, cards.WithRebalanceThreshold(threshold))
	if err != nil {
		log.Warn("pagination failed", zap.Error(err))
		resp.Error = err.Error()
		return resp, nil
	}

	resp.Cards = doc.Cards
	resp.CardCount = len(doc.Cards)
	resp.Empty = doc.Empty()

	// Nothing to render for empty input
	if doc.Empty() || req.Format == "" {
		log.Info("paginated", zap.Int("cards", resp.CardCount), zap.Int("maxChars", maxChars))
		return resp, nil
	}

	if render.IsRemote(req.Format) {
		r, err := h.newRouter(ctx)
		if err != nil {
			resp.Error = fmt.Sprintf("failed to create router: %v", err)
			log.Error("router setup failed", zap.Error(err))
			return resp, nil
		}
		url, err := r.Render(ctx, req.Format, doc)
		if err != nil {
			resp.Error = fmt.Sprintf("rendering failed: %v", err)
			log.Error("remote render failed", zap.String("format", req.Format), zap.Error(err))
			return resp, nil
		}
		resp.ArtifactURL = url
	} else {
		r, err := render.ForFormat(req.Format)
		if err != nil {
			resp.Error = err.Error()
			return resp, nil
		}
		out, err := render.ToString(r, doc)
		if err != nil {
			resp.Error = fmt.Sprintf("rendering failed: %v", err)
			log.Error("local render failed", zap.String("format", req.Format), zap.Error(err))
			return resp, nil
		}
		resp.Rendered = out
	}

	log.Info("paginated",
		zap.Int("cards", resp.CardCount),
		zap.Int("maxChars", maxChars),
		zap.String("format", req.Format))
	return resp, nil
}

// validateRequest checks the request is valid.
func validateRequest(req domain.PaginateRequest) error {
	if req.MaxCharsPerCard < 0 {
		return fmt.Errorf("maxCharsPerCard must be positive")
	}
	if req.RebalanceThreshold != nil && *req.RebalanceThreshold < 0 {
		return fmt.Errorf("rebalanceThreshold must not be negative")
	}
	if req.Format != "" && !render.IsKnown(req.Format) {
		return fmt.Errorf("unknown format %q", req.Format)
	}
	return nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
