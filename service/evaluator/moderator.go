package evaluator

import (
	"fmt"

	"github.com/viant/council/model/decision"
)

// consensusThreshold is the weighted-approval sum at which the council is
// considered to have reached consensus.
const consensusThreshold = 2.0

// Moderation is the moderator's aggregation of the other roles' results.
type Moderation struct {
	Result     decision.RoleResult
	Approvals  float64
	Rejections int
	Consensus  bool
}

// Moderate runs last, after the independent roles have produced their results
// for the same proposal, and aggregates those actual ratings: support and
// approved weigh 1.0, conditional 0.5, reject 0 – with every reject also
// counted against the verdict. The proposal is approved when the weighted
// approvals exceed the rejection count; consensus requires the weighted sum
// to reach the threshold.
func Moderate(results []decision.RoleResult) Moderation {
	var approvals float64
	var rejections int
	for i := range results {
		approvals += results[i].Rating.Weight()
		if results[i].Rating == decision.RatingReject {
			rejections++
		}
	}
	rating := decision.RatingRejected
	if approvals > float64(rejections) {
		rating = decision.RatingApproved
	}
	return Moderation{
		Result: decision.RoleResult{
			Role:      decision.RoleModerator,
			Rating:    rating,
			Reasoning: fmt.Sprintf("%.1f weighted approvals, %d rejections", approvals, rejections),
		},
		Approvals:  approvals,
		Rejections: rejections,
		Consensus:  approvals >= consensusThreshold,
	}
}
