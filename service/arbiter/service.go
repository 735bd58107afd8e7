package arbiter

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/council/internal/clock"
	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/dao"
	"github.com/viant/council/service/evaluator"
	"github.com/viant/council/service/event"
	"github.com/viant/council/service/ledger"
	"github.com/viant/council/service/messaging"
	"github.com/viant/council/service/rulegate"
	"github.com/viant/council/tracing"
)

// Service orchestrates the two-stage gate: the deterministic rule check and,
// when that does not resolve the proposal, the weighted council deliberation.
type Service struct {
	gate   *rulegate.Gate
	ledger ledger.Service
	events messaging.Queue[event.Event]
}

// Option customises the arbiter service.
type Option func(*Service)

// WithQueue attaches an event queue; decisions are announced on it.
func WithQueue(queue messaging.Queue[event.Event]) Option {
	return func(s *Service) { s.events = queue }
}

// New creates a council arbiter over the supplied rule gate and ledger.
func New(gate *rulegate.Gate, ldg ledger.Service, options ...Option) *Service {
	ret := &Service{
		gate:   gate,
		ledger: ldg,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Deliberate arbitrates a proposal. The rule gate is consulted first; when no
// rule matches, the three independent roles evaluate the proposal concurrently
// and the moderator aggregates their actual results. The decision is appended
// to the ledger before it is returned; a ledger failure leaves the proposal
// pending and the call safely retryable.
//
// Deliberating the same proposal id twice is a programming error and fails
// with ledger.ErrDuplicateDecision.
func (s *Service) Deliberate(ctx context.Context, p *proposal.Proposal, actionCtx rulegate.Context) (d *decision.Decision, err error) {
	if p == nil {
		return nil, dao.ErrNilEntity
	}
	ctx, span := tracing.StartSpan(ctx, "council.deliberate", "INTERNAL")
	span.WithAttributes(map[string]string{
		"proposal.id":     p.ID,
		"proposal.domain": string(p.Domain),
		"proposal.risk":   string(p.RiskLevel),
	})
	defer func() { tracing.EndSpan(span, err) }()

	decided, err := s.ledger.Decided(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if decided {
		return nil, fmt.Errorf("proposal %s: %w", p.ID, ledger.ErrDuplicateDecision)
	}

	if outcome := s.gate.Evaluate(actionCtx); outcome.AutoApproved {
		d = s.autoApproved(p, outcome)
	} else {
		d = s.deliberated(p)
	}

	if err = s.ledger.Append(ctx, d); err != nil {
		return nil, err
	}
	s.publish(ctx, &event.Event{Topic: event.TopicDecisionCreated, Data: d, CreatedAt: d.DecidedAt})
	return d, nil
}

// autoApproved synthesises a decision for the rule-gate fast path: all four
// votes are recorded so the persisted shape is identical to a deliberated one.
func (s *Service) autoApproved(p *proposal.Proposal, outcome rulegate.Outcome) *decision.Decision {
	return &decision.Decision{
		ProposalID: p.ID,
		Title:      p.Title,
		Domain:     p.Domain,
		DecidedAt:  clock.Now(),
		CouncilVotes: map[decision.Role]decision.Rating{
			decision.RoleStrategist: decision.RatingSupport,
			decision.RoleSkeptic:    decision.RatingSupport,
			decision.RoleGuardian:   decision.RatingApproved,
			decision.RoleModerator:  decision.RatingApproved,
		},
		FinalVerdict:          decision.VerdictApproved,
		Consensus:             true,
		RequiresHumanApproval: false,
		MatchedRule:           outcome.Rule,
	}
}

// deliberated runs the full council. The three independent roles execute
// concurrently; the moderator is a join point and only starts once all three
// results for this proposal are in.
func (s *Service) deliberated(p *proposal.Proposal) *decision.Decision {
	roles := evaluator.Independent()
	results := make([]decision.RoleResult, len(roles))

	var wg sync.WaitGroup
	wg.Add(len(roles))
	for i, role := range roles {
		fn, _ := evaluator.For(role)
		go func(i int, fn evaluator.Func) {
			defer wg.Done()
			results[i] = fn(p)
		}(i, fn)
	}
	wg.Wait()

	moderation := evaluator.Moderate(results)

	votes := make(map[decision.Role]decision.Rating, len(roles)+1)
	for i := range results {
		votes[results[i].Role] = results[i].Rating
	}
	votes[decision.RoleModerator] = moderation.Result.Rating

	verdict := decision.VerdictRejected
	if moderation.Result.Rating == decision.RatingApproved {
		verdict = decision.VerdictApproved
	}
	return &decision.Decision{
		ProposalID:            p.ID,
		Title:                 p.Title,
		Domain:                p.Domain,
		DecidedAt:             clock.Now(),
		CouncilVotes:          votes,
		FinalVerdict:          verdict,
		Consensus:             moderation.Consensus,
		RequiresHumanApproval: p.ExternalAction && verdict != decision.VerdictApproved,
	}
}

func (s *Service) publish(ctx context.Context, e *event.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, e)
}
