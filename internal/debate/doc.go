// Package debate implements a fixed-length, turn-based debate between two
// scripted personas followed by a neutral adjudication step.
//
// A debate alternates between a Scientist and a Philosopher for MaxRounds
// rounds, starting with the Scientist. Each turn feeds the full formatted
// transcript back into the persona's prompt, so the transcript is the sole
// carrier of conversational memory. When the round threshold is reached,
// control transfers to the Judge, which reviews the whole transcript once
// and produces a summary, a winner, and a justification.
//
// # State Machine
//
// The orchestrator progresses through three phases:
//
//   - Debating: the turn engine produces utterances while the router says
//     to continue
//   - Adjudicating: the judge reviews the transcript exactly once
//   - Done: terminal, the final state carries the verdict
//
// State is threaded linearly through nodes. Every node receives the prior
// state and returns a new one; nothing is mutated in place and nothing is
// shared across runs.
//
// # Usage
//
//	engine := debate.NewEngine(client)
//	judge := debate.NewJudge(client)
//	orch := debate.NewOrchestrator(engine, judge, bus, logger)
//
//	final, err := orch.Run(ctx, "Should AI systems be open source?")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(final.Winner)
package debate
