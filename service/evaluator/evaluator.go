package evaluator

import (
	"fmt"

	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
)

// Func evaluates a proposal from the standpoint of a single council role.
// Implementations are pure: no shared state, safe to run on independent
// proposals fully in parallel.
type Func func(p *proposal.Proposal) decision.RoleResult

// roleFuncs is the closed dispatch table for the three independent roles.
// The moderator is not listed here: it aggregates the others' results and is
// invoked through Moderate once they have all completed.
var roleFuncs = map[decision.Role]Func{
	decision.RoleStrategist: Strategist,
	decision.RoleSkeptic:    Skeptic,
	decision.RoleGuardian:   Guardian,
}

// For returns the evaluator for an independent role.
func For(role decision.Role) (Func, bool) {
	fn, ok := roleFuncs[role]
	return fn, ok
}

// Independent returns the independent roles in deliberation order.
func Independent() []decision.Role {
	return []decision.Role{decision.RoleStrategist, decision.RoleSkeptic, decision.RoleGuardian}
}

// Strategist always backs a proposal; its value lies in articulating the
// strategic fit, not in gatekeeping.
func Strategist(p *proposal.Proposal) decision.RoleResult {
	return decision.RoleResult{
		Role:      decision.RoleStrategist,
		Rating:    decision.RatingSupport,
		Reasoning: fmt.Sprintf("strategic fit for %v domain", p.Domain),
	}
}

// Skeptic challenges a proposal, collecting concerns about external effects,
// elevated risk and inflated priority.
func Skeptic(p *proposal.Proposal) decision.RoleResult {
	var concerns []string
	if p.ExternalAction {
		concerns = append(concerns, "external action requires explicit approval")
	}
	if p.RiskLevel == proposal.RiskHigh || p.RiskLevel == proposal.RiskCritical {
		concerns = append(concerns, fmt.Sprintf("risk level is %v", p.RiskLevel))
	}
	if p.Priority > 4 {
		concerns = append(concerns, "very high priority needs justification")
	}

	rating := decision.RatingSupport
	reasoning := "no major issues"
	switch {
	case p.RiskLevel == proposal.RiskCritical:
		rating = decision.RatingReject
		reasoning = fmt.Sprintf("found %d concern(s)", len(concerns))
	case len(concerns) > 0:
		rating = decision.RatingConditional
		reasoning = fmt.Sprintf("found %d concern(s)", len(concerns))
	}
	return decision.RoleResult{
		Role:      decision.RoleSkeptic,
		Rating:    rating,
		Reasoning: reasoning,
		Concerns:  concerns,
	}
}

// Guardian assesses safety and cost. Critical risk is rejected outright,
// high risk combined with a cost above 100 is only conditionally acceptable.
func Guardian(p *proposal.Proposal) decision.RoleResult {
	rating := decision.RatingApproved
	switch {
	case p.RiskLevel == proposal.RiskCritical:
		rating = decision.RatingReject
	case p.RiskLevel == proposal.RiskHigh && p.EstimatedCost > 100:
		rating = decision.RatingConditional
	}
	return decision.RoleResult{
		Role:      decision.RoleGuardian,
		Rating:    rating,
		Reasoning: fmt.Sprintf("risk: %v, cost: $%.2f", p.RiskLevel, p.EstimatedCost),
	}
}
