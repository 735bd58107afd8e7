package council

import (
	"context"

	"github.com/viant/afs"

	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/arbiter"
	"github.com/viant/council/service/event"
	"github.com/viant/council/service/ledger"
	lmemory "github.com/viant/council/service/ledger/memory"
	"github.com/viant/council/service/messaging"
	mmemory "github.com/viant/council/service/messaging/memory"
	"github.com/viant/council/service/registry"
	"github.com/viant/council/service/rulegate"
)

// Service is the council façade: it wires the proposal registry, the rule
// gate, the role evaluators, the arbiter and the decision ledger. Instances
// are explicit objects – create one per tenant or per test, there is no
// process-wide singleton.
type Service struct {
	config   *Config
	registry *registry.Service
	arbiter  *arbiter.Service
	ledger   ledger.Service
	gate     *rulegate.Gate
	rules    []rulegate.Rule
	events   messaging.Queue[event.Event]
	fs       afs.Service
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.gate = rulegate.New(s.rules...)
	s.registry = registry.New(registry.WithQueue(s.events))
	s.arbiter = arbiter.New(s.gate, s.ledger, arbiter.WithQueue(s.events))
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.ledger == nil {
		s.ledger = lmemory.New(lmemory.WithFS(s.fs))
	}
	if s.rules == nil {
		s.rules = rulegate.DefaultRules()
	}
	if s.events == nil {
		queueConfig := mmemory.DefaultConfig()
		if s.config.Events.QueueBuffer > 0 {
			queueConfig.QueueBuffer = s.config.Events.QueueBuffer
		}
		s.events = mmemory.NewQueue[event.Event](queueConfig)
	}
}

// Init applies the configuration parts that need I/O – currently loading the
// rule set referenced by Config.RulesURL. Calling it with no RulesURL is a
// no-op.
func (s *Service) Init(ctx context.Context) error {
	if s.config == nil || s.config.RulesURL == "" {
		return nil
	}
	return s.LoadRules(ctx, s.config.RulesURL)
}

// LoadRules replaces the gate's rule set with an ordered set loaded from a
// YAML document at the supplied URL.
func (s *Service) LoadRules(ctx context.Context, URL string) error {
	rules, err := rulegate.LoadRules(ctx, s.fs, URL)
	if err != nil {
		return err
	}
	s.rules = rules
	s.gate = rulegate.New(rules...)
	s.arbiter = arbiter.New(s.gate, s.ledger, arbiter.WithQueue(s.events))
	return nil
}

// Submit registers a new proposal for arbitration.
func (s *Service) Submit(ctx context.Context, spec proposal.Spec) (*proposal.Proposal, error) {
	return s.registry.Submit(ctx, spec)
}

// Deliberate arbitrates a registered proposal against the supplied action
// context and appends the decision to the ledger.
func (s *Service) Deliberate(ctx context.Context, p *proposal.Proposal, actionCtx rulegate.Context) (*decision.Decision, error) {
	return s.arbiter.Deliberate(ctx, p, actionCtx)
}

// Pending returns the submitted proposals that have no decision yet, in
// submission order.
func (s *Service) Pending(ctx context.Context) ([]*proposal.Proposal, error) {
	return s.registry.Pending(ctx, s.ledger)
}

// Decision returns the decision for a proposal id, or nil when undecided.
func (s *Service) Decision(ctx context.Context, proposalID string) (*decision.Decision, error) {
	return s.ledger.Decision(ctx, proposalID)
}

// Decisions returns all decisions in stable append order.
func (s *Service) Decisions(ctx context.Context) ([]*decision.Decision, error) {
	return s.ledger.List(ctx)
}

// DecisionsForDomain returns the decisions for one domain, in append order.
func (s *Service) DecisionsForDomain(ctx context.Context, domain proposal.Domain) ([]*decision.Decision, error) {
	return s.ledger.DecisionsForDomain(ctx, domain)
}

// Export writes a durable snapshot of the decision ledger to the destination
// URL and announces it on the event queue.
func (s *Service) Export(ctx context.Context, URL string) error {
	if err := s.ledger.Export(ctx, URL); err != nil {
		return err
	}
	_ = s.events.Publish(ctx, &event.Event{Topic: event.TopicLedgerExported, Data: URL})
	return nil
}

// Ledger exposes the decision ledger.
func (s *Service) Ledger() ledger.Service {
	return s.ledger
}

// Queue exposes the event queue for consumers interested in submissions and
// decisions.
func (s *Service) Queue() messaging.Queue[event.Event] {
	return s.events
}

// New creates a council service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
