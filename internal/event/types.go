package event

import "time"

// Event is implemented by everything published on the bus.
type Event interface {
	// EventType returns a "category.action" identifier, e.g. "turn.completed".
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides the common fields. Embed it in concrete event types.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// DebateStartedEvent is emitted once per run, before the first turn.
type DebateStartedEvent struct {
	baseEvent
	RunID string
	Topic string
}

// NewDebateStartedEvent creates a DebateStartedEvent.
func NewDebateStartedEvent(runID, topic string) DebateStartedEvent {
	return DebateStartedEvent{
		baseEvent: newBaseEvent("debate.started"),
		RunID:     runID,
		Topic:     topic,
	}
}

// TurnCompletedEvent is emitted after each persona turn.
type TurnCompletedEvent struct {
	baseEvent
	RunID   string
	Round   int    // 1-based round number of the completed turn
	Speaker string // persona that produced the argument
	Text    string // the argument as recorded in the transcript
}

// NewTurnCompletedEvent creates a TurnCompletedEvent.
func NewTurnCompletedEvent(runID string, round int, speaker, text string) TurnCompletedEvent {
	return TurnCompletedEvent{
		baseEvent: newBaseEvent("turn.completed"),
		RunID:     runID,
		Round:     round,
		Speaker:   speaker,
		Text:      text,
	}
}

// JudgeCompletedEvent is emitted after the single adjudication step.
type JudgeCompletedEvent struct {
	baseEvent
	RunID         string
	Summary       string
	Winner        string
	Justification string
}

// NewJudgeCompletedEvent creates a JudgeCompletedEvent.
func NewJudgeCompletedEvent(runID, summary, winner, justification string) JudgeCompletedEvent {
	return JudgeCompletedEvent{
		baseEvent:     newBaseEvent("judge.completed"),
		RunID:         runID,
		Summary:       summary,
		Winner:        winner,
		Justification: justification,
	}
}

// DebateAbortedEvent is emitted when a run terminates abnormally, either
// from a generation failure or the node invocation ceiling.
type DebateAbortedEvent struct {
	baseEvent
	RunID  string
	Reason string
}

// NewDebateAbortedEvent creates a DebateAbortedEvent.
func NewDebateAbortedEvent(runID, reason string) DebateAbortedEvent {
	return DebateAbortedEvent{
		baseEvent: newBaseEvent("debate.aborted"),
		RunID:     runID,
		Reason:    reason,
	}
}
