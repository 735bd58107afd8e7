package ledger

import (
	"context"
	"errors"

	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
)

// ErrDuplicateDecision is returned when a decision for the same proposal id
// is appended twice. A proposal is decided at most once; the ledger is the
// single writer of record and never revises an entry.
var ErrDuplicateDecision = errors.New("duplicate decision")

// Service is the append-only, query-able record of all decisions.
type Service interface {
	// Append inserts a decision; it fails with ErrDuplicateDecision when the
	// proposal id is already present. The duplicate check and the insert are
	// atomic – a failed append leaves no trace.
	Append(ctx context.Context, d *decision.Decision) error

	// Decision returns the decision for a proposal id, or nil when the
	// proposal has not been decided.
	Decision(ctx context.Context, proposalID string) (*decision.Decision, error)

	// Decided reports whether a decision exists for the proposal id.
	Decided(ctx context.Context, proposalID string) (bool, error)

	// List returns all decisions in stable append order.
	List(ctx context.Context) ([]*decision.Decision, error)

	// DecisionsForDomain returns the decisions for one domain, in append order.
	DecisionsForDomain(ctx context.Context, domain proposal.Domain) ([]*decision.Decision, error)

	// Export writes a durable serialized snapshot of the whole ledger to the
	// destination URL. The write is all-or-nothing: a reader never observes
	// a partially written ledger.
	Export(ctx context.Context, URL string) error
}
