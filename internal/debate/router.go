package debate

// Decision is the router's verdict on what the orchestrator does next.
type Decision string

const (
	// Continue - the debate has rounds left; run another turn.
	Continue Decision = "continue"
	// Adjudicate - the round threshold is reached; hand over to the judge.
	Adjudicate Decision = "adjudicate"
)

// Route decides whether the debate continues or moves to adjudication.
// Pure function of the round count: Adjudicate once Round reaches
// MaxRounds, Continue before that.
func Route(state State) Decision {
	if state.Round >= MaxRounds {
		return Adjudicate
	}
	return Continue
}
