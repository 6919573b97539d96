package debate

// Role identifies a debate persona.
type Role string

const (
	// RoleScientist argues from evidence and established theory.
	RoleScientist Role = "Scientist"

	// RolePhilosopher argues from logic, ethics, and philosophical frameworks.
	RolePhilosopher Role = "Philosopher"
)

// Opponent returns the other persona.
func (r Role) Opponent() Role {
	if r == RoleScientist {
		return RolePhilosopher
	}
	return RoleScientist
}

// MaxRounds is the total number of debate rounds (four per persona).
const MaxRounds = 8

// maxNodeInvocations is a safety ceiling on total node executions per run.
// It is deliberately generous: a correct run needs MaxRounds turns plus one
// adjudication. Exceeding it means the router logic is broken.
const maxNodeInvocations = 15

// FillerArgument replaces a generated argument that exactly duplicates an
// earlier utterance. Verbatim equality only; paraphrased repeats pass through.
const FillerArgument = "I will restate my previous point to emphasize its importance."

// Utterance is a single persona argument. Immutable once created.
type Utterance struct {
	Role Role
	Text string
}

// Phase represents the orchestrator's position in the debate lifecycle.
type Phase string

const (
	// PhaseDebating - personas are still exchanging arguments.
	PhaseDebating Phase = "debating"
	// PhaseAdjudicating - the judge is reviewing the transcript.
	PhaseAdjudicating Phase = "adjudicating"
	// PhaseDone - terminal, the verdict has been merged into state.
	PhaseDone Phase = "done"
)

// State carries everything a node needs and everything a node produced.
// Nodes never mutate a State they receive; they return a modified copy,
// so two snapshots of the same run can be compared safely.
type State struct {
	Topic       string
	Transcript  []Utterance
	Round       int
	NextSpeaker Role

	// Verdict fields, empty until the judge has run.
	Summary       string
	Winner        string
	Justification string
}

// NewState returns the initial state for a debate on the given topic:
// round zero, empty transcript, Scientist to speak first.
func NewState(topic string) State {
	return State{
		Topic:       topic,
		NextSpeaker: RoleScientist,
	}
}

// clone returns a deep copy of the state. The transcript backing array is
// copied so appends on the clone never alias the original.
func (s State) clone() State {
	out := s
	out.Transcript = make([]Utterance, len(s.Transcript))
	copy(out.Transcript, s.Transcript)
	return out
}

// Verdict is the judge's three-field output.
type Verdict struct {
	Summary       string
	Winner        string
	Justification string
}

// WinnerRole normalizes the free-form winner string against the known
// personas. The judge does not constrain its winner field, so callers that
// need a typed role should use this and handle the false case.
func (v Verdict) WinnerRole() (Role, bool) {
	switch v.Winner {
	case string(RoleScientist):
		return RoleScientist, true
	case string(RolePhilosopher):
		return RolePhilosopher, true
	}
	return "", false
}
