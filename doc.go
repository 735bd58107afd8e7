// Package council arbitrates proposed actions through a two-stage gate: a
// fast deterministic rule check and, when that does not resolve the proposal,
// a weighted multi-role deliberation producing a final verdict and a
// human-approval flag.
//
// The library comes with pluggable service layers:
//
//   - registry  – proposal identity and submission order
//   - rulegate  – ordered, first-match-wins auto-approve rules
//   - evaluator – the four fixed council roles (strategist, skeptic,
//     guardian, moderator)
//   - arbiter   – orchestration of rule gate and deliberation
//   - ledger    – append-only, query-able decision record
//
// Council is designed to be embedded in host applications. End-users
// typically interact via the high-level Service façade exposed by the root
// package:
//
//	srv := council.New()
//	p, _ := srv.Submit(ctx, proposal.Spec{Title: "deploy script", Domain: proposal.DomainPersonal, Priority: 4, RiskLevel: proposal.RiskLow})
//	d, _ := srv.Deliberate(ctx, p, rulegate.Context{rulegate.KeyActionType: "read", rulegate.KeyRiskLevel: "low"})
//
// For more details see the individual sub-packages.
package council
