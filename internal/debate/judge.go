package debate

import (
	"context"
	"fmt"
	"strings"
)

// Marker labels the judge is instructed to emit, in order.
const (
	markerSummary       = "SUMMARY:"
	markerWinner        = "WINNER:"
	markerJustification = "JUSTIFICATION:"
)

// Sentinel values substituted when the judge's output does not follow the
// three-label format. A malformed adjudication never aborts the run.
const (
	FallbackSummary       = "The judge failed to provide a structured summary."
	FallbackWinner        = "No winner declared"
	FallbackJustification = "The judge's output was malformed."
)

// Judge performs the terminal adjudication step.
type Judge struct {
	gen Generator
}

// NewJudge creates a judge backed by the given generator.
func NewJudge(gen Generator) *Judge {
	return &Judge{gen: gen}
}

// Adjudicate reviews the full transcript with exactly one generation call
// and parses the response into a Verdict. Transport failures are returned
// as errors; a response that merely fails to follow the label format
// degrades to the fallback sentinels instead.
func (j *Judge) Adjudicate(ctx context.Context, state State) (Verdict, error) {
	prompt := FormatJudgePrompt(state.Topic, state.Transcript)

	raw, err := j.gen.Complete(ctx, prompt)
	if err != nil {
		return Verdict{}, fmt.Errorf("debate: adjudication: %w", err)
	}

	return ParseVerdict(raw), nil
}

// ParseVerdict extracts the summary, winner, and justification sections
// from the judge's raw output. The three labels must appear in order;
// string-marker parsing is best-effort by construction and falls back to
// sentinel values when any marker is missing.
func ParseVerdict(raw string) Verdict {
	si := strings.Index(raw, markerSummary)
	wi := strings.Index(raw, markerWinner)
	ji := strings.Index(raw, markerJustification)

	if si < 0 || wi < 0 || ji < 0 || wi < si || ji < wi {
		return Verdict{
			Summary:       FallbackSummary,
			Winner:        FallbackWinner,
			Justification: FallbackJustification,
		}
	}

	return Verdict{
		Summary:       strings.TrimSpace(raw[si+len(markerSummary) : wi]),
		Winner:        strings.TrimSpace(raw[wi+len(markerWinner) : ji]),
		Justification: strings.TrimSpace(raw[ji+len(markerJustification):]),
	}
}
