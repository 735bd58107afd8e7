// Package evaluator implements the four council roles as pure policy
// functions over a proposal. Strategist, skeptic and guardian are mutually
// independent; the moderator aggregates their actual results and must run
// after all three have completed. The role set is closed – dispatch is a
// fixed strategy table, not an open hierarchy.
package evaluator
