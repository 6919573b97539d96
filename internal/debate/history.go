package debate

import (
	"fmt"
	"strings"
)

// historyEmpty is returned for a transcript with no utterances, so persona
// prompts always embed a non-empty history section.
const historyEmpty = "The debate has not started yet."

// FormatHistory renders a transcript as one line per utterance:
//
//	[Round 1] Scientist: ...
//	[Round 2] Philosopher: ...
//
// Speaker labels come from index parity, not from the stored role: turns
// strictly alternate starting with the Scientist, so the position in the
// transcript determines the speaker.
func FormatHistory(transcript []Utterance) string {
	if len(transcript) == 0 {
		return historyEmpty
	}

	var b strings.Builder
	for i, u := range transcript {
		speaker := RoleScientist
		if i%2 == 1 {
			speaker = RolePhilosopher
		}
		fmt.Fprintf(&b, "[Round %d] %s: %s\n", i+1, speaker, u.Text)
	}
	return strings.TrimRight(b.String(), " \t\n")
}
