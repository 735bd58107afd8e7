package registry

import (
	"context"

	"github.com/viant/council/internal/clock"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/dao"
	"github.com/viant/council/service/dao/store"
	"github.com/viant/council/service/event"
	"github.com/viant/council/service/ledger"
	"github.com/viant/council/service/messaging"
)

// Service owns proposal identity and submission order.
type Service struct {
	proposals dao.Service[string, proposal.Proposal]
	events    messaging.Queue[event.Event]
}

// key selector – grab ID field
func proposalKey(p *proposal.Proposal) string { return p.ID }

// Option customises the registry service.
type Option func(*Service)

// WithQueue attaches an event queue; submissions are announced on it.
func WithQueue(queue messaging.Queue[event.Event]) Option {
	return func(s *Service) { s.events = queue }
}

// New creates a proposal registry.
func New(options ...Option) *Service {
	ret := &Service{
		proposals: store.NewMemoryStore[string, proposal.Proposal](proposalKey),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Submit validates the spec and registers a new proposal. The identifier is
// assigned here and is unique even for submissions within the same second.
func (s *Service) Submit(ctx context.Context, spec proposal.Spec) (*proposal.Proposal, error) {
	p, err := proposal.New(spec)
	if err != nil {
		return nil, err
	}
	if err = s.proposals.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.publish(ctx, &event.Event{Topic: event.TopicProposalSubmitted, Data: p, CreatedAt: clock.Now()})
	return p, nil
}

// Proposal returns a registered proposal by id, or nil when absent.
func (s *Service) Proposal(ctx context.Context, id string) (*proposal.Proposal, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	return s.proposals.Load(ctx, id)
}

// List returns all registered proposals in submission order.
func (s *Service) List(ctx context.Context) ([]*proposal.Proposal, error) {
	return s.proposals.List(ctx)
}

// Pending returns the proposals that have no decision in the ledger, in
// submission order. The decided set is snapshotted once so repeated calls
// with no new decisions return identical results.
func (s *Service) Pending(ctx context.Context, ldg ledger.Service) ([]*proposal.Proposal, error) {
	all, err := s.proposals.List(ctx)
	if err != nil {
		return nil, err
	}
	decisions, err := ldg.List(ctx)
	if err != nil {
		return nil, err
	}
	decided := make(map[string]bool, len(decisions))
	for _, d := range decisions {
		decided[d.ProposalID] = true
	}
	pending := make([]*proposal.Proposal, 0, len(all))
	for _, p := range all {
		if !decided[p.ID] {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

func (s *Service) publish(ctx context.Context, e *event.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, e)
}
