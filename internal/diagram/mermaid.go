// Package diagram renders the debate state-machine graph as a Mermaid
// artifact. The rendering is a side artifact of a run: failing to produce
// it must never abort the debate, so callers treat errors as warnings.
package diagram

import (
	"fmt"
	"os"
	"strings"
)

// Mermaid returns the debate workflow as Mermaid flowchart text: the agent
// node looping through the router until the round threshold sends control
// to the judge, which terminates the run.
func Mermaid() string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	b.WriteString("    START([start]) --> agent\n")
	b.WriteString("    agent[\"agent<br/>(Scientist / Philosopher turn)\"] --> router{round >= 8?}\n")
	b.WriteString("    router -- no --> agent\n")
	b.WriteString("    router -- yes --> judge[\"judge<br/>(summary / winner / justification)\"]\n")
	b.WriteString("    judge --> END([end])\n")
	return b.String()
}

// Write renders the graph to path.
func Write(path string) error {
	if err := os.WriteFile(path, []byte(Mermaid()), 0644); err != nil {
		return fmt.Errorf("diagram: write %s: %w", path, err)
	}
	return nil
}
