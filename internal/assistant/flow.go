package assistant

import (
	"context"
	"sync"

	"github.com/firebase/genkit/go/core"
	"github.com/firebase/genkit/go/genkit"
)

// Input defines the request payload for the chat flow.
type Input struct {
	Message string `json:"message"`
}

// Output defines the response payload from the chat flow.
type Output struct {
	Response string `json:"response"`
}

// FlowName is the registered name of the chat flow in Genkit.
const FlowName = "tfm/chat"

// Flow is the type alias for the chat Genkit flow.
// Exported for use in the api package with genkit.Handler().
type Flow = core.Flow[Input, Output, struct{}]

// Package-level singleton for Flow to prevent panic on re-registration.
var (
	flowOnce sync.Once
	flow     *Flow
)

// NewFlow returns the chat Flow singleton, initializing it on first call.
// Subsequent calls return the existing Flow (parameters are ignored).
// This is safe because genkit.DefineFlow panics on re-registration.
func NewFlow(g *genkit.Genkit, agent *Agent) *Flow {
	flowOnce.Do(func() {
		flow = agent.DefineFlow(g)
	})
	return flow
}

// ResetFlowForTesting resets the Flow singleton for testing.
// WARNING: Only use in tests. Not safe for concurrent use.
func ResetFlowForTesting() {
	flowOnce = sync.Once{}
	flow = nil
}

// DefineFlow registers the Genkit flow wrapping Agent.Answer.
//
// Use NewFlow() instead of calling DefineFlow() directly: DefineFlow
// registers a global flow, and calling it twice causes a panic.
//
// The flow is a thin wrapper; all logic lives in Answer. Registering it
// gives DevUI tracing, a typed Input/Output schema, and an HTTP handler
// via genkit.Handler().
func (a *Agent) DefineFlow(g *genkit.Genkit) *Flow {
	return genkit.DefineFlow(g, FlowName,
		func(ctx context.Context, input Input) (Output, error) {
			response, err := a.Answer(ctx, input.Message)
			if err != nil {
				return Output{}, err
			}
			return Output{Response: response}, nil
		},
	)
}
