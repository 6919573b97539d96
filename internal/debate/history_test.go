package debate

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatHistoryEmpty(t *testing.T) {
	got := FormatHistory(nil)
	if got != historyEmpty {
		t.Errorf("FormatHistory(nil) = %q, want %q", got, historyEmpty)
	}
	if got == "" {
		t.Error("empty transcript must render the sentinel, not an empty string")
	}
}

func TestFormatHistoryLineCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = fmt.Sprintf("point %d", i+1)
		}
		transcript := transcriptOf(t, texts...)

		lines := strings.Split(FormatHistory(transcript), "\n")
		if len(lines) != n {
			t.Errorf("n=%d: got %d lines, want %d", n, len(lines), n)
		}
	}
}

func TestFormatHistoryLabelsByParity(t *testing.T) {
	transcript := transcriptOf(t, "a", "b", "c", "d")

	lines := strings.Split(FormatHistory(transcript), "\n")
	want := []string{
		"[Round 1] Scientist: a",
		"[Round 2] Philosopher: b",
		"[Round 3] Scientist: c",
		"[Round 4] Philosopher: d",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i+1, line, want[i])
		}
	}
}

func TestFormatHistoryTrimsTrailingWhitespace(t *testing.T) {
	got := FormatHistory(transcriptOf(t, "only point"))
	if strings.HasSuffix(got, "\n") || strings.HasSuffix(got, " ") {
		t.Errorf("formatted history has trailing whitespace: %q", got)
	}
}

func TestFormatHistoryLabelsIgnoreStoredRole(t *testing.T) {
	// Labels come from position, not from the stored role.
	transcript := []Utterance{
		{Role: RolePhilosopher, Text: "first"},
		{Role: RolePhilosopher, Text: "second"},
	}

	lines := strings.Split(FormatHistory(transcript), "\n")
	if !strings.HasPrefix(lines[0], "[Round 1] Scientist:") {
		t.Errorf("line 1 = %q, want Scientist label", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[Round 2] Philosopher:") {
		t.Errorf("line 2 = %q, want Philosopher label", lines[1])
	}
}
