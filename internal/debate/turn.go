package debate

import (
	"context"
	"fmt"
)

// Generator is the external text-generation capability. Implementations
// live in internal/llm; tests substitute stubs.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine produces one debate turn at a time. It holds no per-run state; the
// same engine can serve any number of sequential debates.
type Engine struct {
	gen Generator
}

// NewEngine creates a turn engine backed by the given generator.
func NewEngine(gen Generator) *Engine {
	return &Engine{gen: gen}
}

// TakeTurn executes one round: it selects the persona template for the
// current speaker, makes exactly one generation call, applies the verbatim
// repetition guard, and returns the utterance along with the successor
// state (utterance appended, round incremented, speaker flipped).
//
// The received state is not modified. A generation failure is returned
// unwrapped in meaning: no retry is attempted at this layer.
func (e *Engine) TakeTurn(ctx context.Context, state State) (Utterance, State, error) {
	speaker := state.NextSpeaker
	prompt := FormatPersonaPrompt(speaker, state.Topic, state.Transcript)

	text, err := e.gen.Complete(ctx, prompt)
	if err != nil {
		return Utterance{}, State{}, fmt.Errorf("debate: %s turn %d: %w", speaker, state.Round+1, err)
	}

	// Anti-loop safeguard, not semantic deduplication: only an exact
	// full-string duplicate of a prior utterance is replaced.
	for _, prior := range state.Transcript {
		if text == prior.Text {
			text = FillerArgument
			break
		}
	}

	u := Utterance{Role: speaker, Text: text}

	next := state.clone()
	next.Transcript = append(next.Transcript, u)
	next.Round = state.Round + 1
	next.NextSpeaker = speaker.Opponent()

	return u, next, nil
}
