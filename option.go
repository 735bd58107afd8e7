package council

import (
	"github.com/viant/afs"

	"github.com/viant/council/service/event"
	"github.com/viant/council/service/ledger"
	"github.com/viant/council/service/messaging"
	"github.com/viant/council/service/rulegate"
)

// Option customises the council service.
type Option func(s *Service)

// WithConfig applies a declarative configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithLedger sets the decision ledger.
func WithLedger(ldg ledger.Service) Option {
	return func(s *Service) { s.ledger = ldg }
}

// WithRules replaces the stock auto-approve rule set. Order matters: the
// first matching rule wins.
func WithRules(rules ...rulegate.Rule) Option {
	return func(s *Service) { s.rules = rules }
}

// WithQueue sets the event queue decisions and submissions are announced on.
func WithQueue(queue messaging.Queue[event.Event]) Option {
	return func(s *Service) { s.events = queue }
}

// WithFS sets the file service used for rule loading and ledger export.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}
