// Package arbiter orchestrates proposal arbitration: rule gate first, full
// council deliberation otherwise, ledger append last. No critical-risk action
// can be silently approved – ambiguity always surfaces through the verdict
// and the human-approval flag, never by defaulting to approval.
package arbiter
