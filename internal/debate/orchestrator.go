package debate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arbiterhq/colloquy/internal/event"
	"github.com/arbiterhq/colloquy/internal/logging"
)

// ErrMaxTurnsExceeded is returned when the node invocation ceiling is hit
// before the debate reaches adjudication. It indicates a router or engine
// defect, not a normal termination.
var ErrMaxTurnsExceeded = errors.New("debate: exceeded maximum turns")

// Orchestrator drives the debate state machine: it loops the turn engine
// while the router says to continue, then runs the judge exactly once and
// merges the verdict into the final state.
type Orchestrator struct {
	engine *Engine
	judge  *Judge
	bus    *event.Bus
	logger *logging.Logger

	// route is swappable so a broken-router scenario can be exercised.
	route func(State) Decision
}

// NewOrchestrator wires an orchestrator. The bus may be nil when no one
// listens for transitions; a nil logger falls back to a no-op logger.
func NewOrchestrator(engine *Engine, judge *Judge, bus *event.Bus, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Orchestrator{
		engine: engine,
		judge:  judge,
		bus:    bus,
		logger: logger,
		route:  Route,
	}
}

// Run executes a complete debate on the topic and returns the final state.
// Execution is strictly sequential: each node call blocks until its
// generation call returns. A generation failure aborts the run with a
// wrapped error; a malformed judge response does not.
func (o *Orchestrator) Run(ctx context.Context, topic string) (State, error) {
	runID := uuid.NewString()
	log := o.logger.WithRun(runID)

	state := NewState(topic)
	phase := PhaseDebating

	log.Info("debate starting", "topic", topic)
	o.publish(event.NewDebateStartedEvent(runID, topic))

	invocations := 0
	for phase == PhaseDebating {
		if o.route(state) == Adjudicate {
			phase = PhaseAdjudicating
			break
		}

		if invocations++; invocations > maxNodeInvocations {
			log.Error("node invocation ceiling breached", "invocations", invocations)
			o.publish(event.NewDebateAbortedEvent(runID, ErrMaxTurnsExceeded.Error()))
			return state, ErrMaxTurnsExceeded
		}

		u, next, err := o.engine.TakeTurn(ctx, state)
		if err != nil {
			log.Error("turn failed", "round", state.Round+1, "error", err.Error())
			o.publish(event.NewDebateAbortedEvent(runID, err.Error()))
			return state, fmt.Errorf("debate aborted: generation failure: %w", err)
		}
		state = next

		log.WithNode("agent").Info("turn completed",
			"round", state.Round,
			"speaker", string(u.Role),
			"argument", u.Text,
			"next_speaker", string(state.NextSpeaker),
		)
		o.publish(event.NewTurnCompletedEvent(runID, state.Round, string(u.Role), u.Text))
	}

	if invocations++; invocations > maxNodeInvocations {
		log.Error("node invocation ceiling breached", "invocations", invocations)
		o.publish(event.NewDebateAbortedEvent(runID, ErrMaxTurnsExceeded.Error()))
		return state, ErrMaxTurnsExceeded
	}

	verdict, err := o.judge.Adjudicate(ctx, state)
	if err != nil {
		log.Error("adjudication failed", "error", err.Error())
		o.publish(event.NewDebateAbortedEvent(runID, err.Error()))
		return state, fmt.Errorf("debate aborted: generation failure: %w", err)
	}

	final := state.clone()
	final.Summary = verdict.Summary
	final.Winner = verdict.Winner
	final.Justification = verdict.Justification

	log.WithNode("judge").Info("adjudication completed",
		"summary", verdict.Summary,
		"winner", verdict.Winner,
		"justification", verdict.Justification,
	)
	o.publish(event.NewJudgeCompletedEvent(runID, verdict.Summary, verdict.Winner, verdict.Justification))

	log.Info("debate concluded", "rounds", final.Round, "winner", final.Winner)
	return final, nil
}

func (o *Orchestrator) publish(e event.Event) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}
