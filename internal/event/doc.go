// Package event defines the events a debate run emits and a small
// synchronous pub-sub bus for delivering them. The orchestrator publishes
// one event per node transition; the CLI and the run log subscribe without
// the orchestrator depending on either.
package event
