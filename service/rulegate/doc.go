// Package rulegate implements the deterministic fast path of proposal
// arbitration: an ordered list of rules, each a conjunction of structured
// field/operator/value predicates evaluated against a typed action context.
// Matching is first-match-wins, keeping evaluation order explicit and
// testable without any expression parser.
package rulegate
