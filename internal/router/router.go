// Package router routes rendering requests to the downstream renderer Lambdas.
package router

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/pricofy/cardprint/internal/cards"
	"github.com/pricofy/cardprint/internal/domain"
	"github.com/pricofy/cardprint/internal/render"
)

// Invoker is the part of the Lambda client the router needs.
type Invoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Router routes rendering requests to the appropriate Lambda function.
type Router struct {
	lambdaClient Invoker
	prefix       string
	environment  string
}

// New creates a Router backed by the default AWS configuration.
func New(ctx context.Context, prefix, environment string) (*Router, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewWithClient(lambda.NewFromConfig(cfg), prefix, environment), nil
}

// NewWithClient creates a Router around an existing client.
func NewWithClient(client Invoker, prefix, environment string) *Router {
	return &Router{
		lambdaClient: client,
		prefix:       prefix,
		environment:  environment,
	}
}

// FunctionName returns the renderer Lambda for a format, or "" when the
// format is not rendered remotely.
func (r *Router) FunctionName(format string) string {
	if !render.IsRemote(format) {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", r.prefix, format, r.environment)
}

// Render sends the document to the renderer Lambda for format and returns
// the location of the produced artifact.
func (r *Router) Render(ctx context.Context, format string, doc cards.Document) (string, error) {
	functionName := r.FunctionName(format)
	if functionName == "" {
		return "", fmt.Errorf("unsupported remote format: %s", format)
	}

	resp, err := r.invokeLambda(ctx, functionName, domain.RenderRequest{
		Format: format,
		Cards:  doc.Cards,
	})
	if err != nil {
		return "", fmt.Errorf("render %s failed: %w", format, err)
	}
	return resp.ArtifactURL, nil
}

// invokeLambda calls a renderer Lambda synchronously.
func (r *Router) invokeLambda(ctx context.Context, functionName string, req domain.RenderRequest) (*domain.RenderResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	result, err := r.lambdaClient.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	if result.FunctionError != nil {
		return nil, fmt.Errorf("lambda error: %s", *result.FunctionError)
	}

	var resp domain.RenderResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("renderer error: %s", resp.Error)
	}
	if resp.ArtifactURL == "" {
		return nil, fmt.Errorf("renderer returned no artifact")
	}

	return &resp, nil
}
