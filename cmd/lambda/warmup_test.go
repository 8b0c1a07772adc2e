package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pricofy/cardprint/internal/logger"
)

type countingInvoker struct {
	calls atomic.Int32
	err   error

	mu    sync.Mutex
	input *lambdasdk.InvokeInput
}

func (c *countingInvoker) Invoke(_ context.Context, params *lambdasdk.InvokeInput, _ ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.input = params
	c.mu.Unlock()
	return &lambdasdk.InvokeOutput{}, c.err
}

func useInvoker(t *testing.T, inv invoker) {
	t.Helper()
	orig := newInvoker
	newInvoker = func(context.Context) (invoker, error) { return inv, nil }
	t.Cleanup(func() { newInvoker = orig })
}

func TestIsWarmupEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       string
		ok          bool
		concurrency int
	}{
		{name: "warmup without concurrency", event: `{"source":"warmup"}`, ok: true},
		{name: "warmup with concurrency", event: `{"source":"warmup","concurrency":3}`, ok: true, concurrency: 3},
		{name: "negative concurrency clamps", event: `{"source":"warmup","concurrency":-2}`, ok: true},
		{name: "other source", event: `{"source":"aws.events"}`},
		{name: "pagination request", event: `{"text":"Hello."}`},
		{name: "not an object", event: `"warmup"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmup, ok := IsWarmupEvent(json.RawMessage(tt.event))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, warmup)
				assert.Equal(t, tt.concurrency, warmup.Concurrency)
			}
		})
	}
}

func TestHandleWarmup_SelfInvokes(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "cardprint-dev")

	inv := &countingInvoker{}
	useInvoker(t, inv)

	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 4}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "warm", resp.Status)
	assert.Equal(t, 5, resp.InstancesWarmed)
	assert.EqualValues(t, 4, inv.calls.Load())
	assert.Equal(t, "cardprint-dev", aws.ToString(inv.input.FunctionName))
	assert.Equal(t, types.InvocationTypeEvent, inv.input.InvocationType)

	var child WarmupEvent
	require.NoError(t, json.Unmarshal(inv.input.Payload, &child))
	assert.Zero(t, child.Concurrency, "child invocations must not fan out again")
}

func TestHandleWarmup_CapsConcurrency(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "cardprint-dev")

	inv := &countingInvoker{}
	useInvoker(t, inv)

	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 500}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, maxWarmupConcurrency+1, resp.InstancesWarmed)
	assert.EqualValues(t, maxWarmupConcurrency, inv.calls.Load())
}

func TestHandleWarmup_InvokeFailureStillWarm(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "cardprint-dev")

	useInvoker(t, &countingInvoker{err: errors.New("throttled")})

	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.InstancesWarmed)
}

func TestHandleWarmup_NoFunctionName(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

	inv := &countingInvoker{}
	useInvoker(t, inv)

	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.InstancesWarmed)
	assert.Zero(t, inv.calls.Load())
}
