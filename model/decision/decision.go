package decision

import (
	"time"

	"github.com/viant/council/model/proposal"
)

// Role identifies a council seat. The set is closed by design: adding a seat
// changes the moderator aggregation arithmetic and the shape of the persisted
// vote map, so new roles must never appear without a ledger format revision.
type Role string

const (
	RoleStrategist Role = "strategist"
	RoleSkeptic    Role = "skeptic"
	RoleGuardian   Role = "guardian"
	RoleModerator  Role = "moderator"
)

// Roles returns the closed council seat set in deliberation order; the
// moderator is always last.
func Roles() []Role {
	return []Role{RoleStrategist, RoleSkeptic, RoleGuardian, RoleModerator}
}

// Rating is a single role's stance on a proposal. The moderator additionally
// emits the terminal approved/rejected pair as its final rating.
type Rating string

const (
	RatingSupport     Rating = "support"
	RatingConditional Rating = "conditional"
	RatingReject      Rating = "reject"
	RatingApproved    Rating = "approved"
	RatingRejected    Rating = "rejected"
)

// Weight maps a rating onto its contribution to the weighted approval sum.
func (r Rating) Weight() float64 {
	switch r {
	case RatingSupport, RatingApproved:
		return 1.0
	case RatingConditional:
		return 0.5
	}
	return 0
}

// Verdict is the final outcome of arbitrating one proposal.
type Verdict string

const (
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
)

// RoleResult captures a single role's evaluation of one proposal.
type RoleResult struct {
	Role      Role     `json:"role"`
	Rating    Rating   `json:"rating"`
	Reasoning string   `json:"reasoning"`
	Concerns  []string `json:"concerns,omitempty"`
}

// Decision is the immutable outcome of arbitrating one proposal. Field names
// are the wire contract relied upon by status reporting and notification
// consumers of the exported ledger.
type Decision struct {
	ProposalID            string          `json:"proposal_id"`
	Title                 string          `json:"title"`
	Domain                proposal.Domain `json:"domain"`
	DecidedAt             time.Time       `json:"decided_at"`
	CouncilVotes          map[Role]Rating `json:"council_votes"`
	FinalVerdict          Verdict         `json:"final_verdict"`
	Consensus             bool            `json:"consensus"`
	RequiresHumanApproval bool            `json:"requires_human_approval"`
	MatchedRule           string          `json:"matched_rule,omitempty"`
}
