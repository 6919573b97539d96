package debate

import (
	"context"
	"fmt"
	"testing"
)

// scriptedGenerator returns canned responses in order, then keeps returning
// the last one. It records every prompt it receives.
type scriptedGenerator struct {
	responses []string
	prompts   []string
	err       error
}

func (g *scriptedGenerator) Complete(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", fmt.Errorf("scriptedGenerator: no responses left")
	}
	resp := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return resp, nil
}

// uniqueGenerator returns a distinct string per call.
type uniqueGenerator struct {
	calls int
}

func (g *uniqueGenerator) Complete(context.Context, string) (string, error) {
	g.calls++
	return fmt.Sprintf("argument #%d", g.calls), nil
}

func transcriptOf(t *testing.T, texts ...string) []Utterance {
	t.Helper()
	out := make([]Utterance, len(texts))
	for i, text := range texts {
		role := RoleScientist
		if i%2 == 1 {
			role = RolePhilosopher
		}
		out[i] = Utterance{Role: role, Text: text}
	}
	return out
}
