// Package domain contains the request and response types exchanged with
// callers and with downstream renderer functions.
package domain

import "github.com/pricofy/cardprint/internal/cards"

// PaginateRequest is the input to the card paginator. Zero sizes fall back
// to the configured defaults; an empty format returns cards only.
type PaginateRequest struct {
	Text               string `json:"text"`
	MaxCharsPerCard    int    `json:"maxCharsPerCard,omitempty"`
	RebalanceThreshold *int   `json:"rebalanceThreshold,omitempty"`
	Format             string `json:"format,omitempty"`
}

// PaginateResponse is the output of the card paginator.
type PaginateResponse struct {
	RequestID   string       `json:"requestId,omitempty"`
	Cards       []cards.Card `json:"cards,omitempty"`
	CardCount   int          `json:"cardCount"`
	Empty       bool         `json:"empty,omitempty"`
	Rendered    string       `json:"rendered,omitempty"`
	ArtifactURL string       `json:"artifactUrl,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// RenderRequest is the payload sent to a downstream renderer function.
type RenderRequest struct {
	Format string       `json:"format"`
	Cards  []cards.Card `json:"cards"`
}

// RenderResponse is the payload returned by a downstream renderer function.
type RenderResponse struct {
	ArtifactURL string `json:"artifactUrl"`
	Error       string `json:"error,omitempty"`
}
