package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/dao"
	"github.com/viant/council/service/dao/store"
	"github.com/viant/council/service/ledger"
)

type service struct {
	decisions dao.Service[string, decision.Decision]
	fs        afs.Service
}

// key selector – decisions are keyed by the proposal they decide.
func decisionKey(d *decision.Decision) string { return d.ProposalID }

// Option customises the ledger service.
type Option func(*service)

// WithFS overrides the file service used by Export.
func WithFS(fs afs.Service) Option {
	return func(s *service) { s.fs = fs }
}

// New creates an in-memory decision ledger.
func New(options ...Option) ledger.Service {
	ret := &service{
		decisions: store.NewMemoryStore[string, decision.Decision](decisionKey),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

func (s *service) Append(ctx context.Context, d *decision.Decision) error {
	if d == nil {
		return dao.ErrNilEntity
	}
	if d.ProposalID == "" {
		return dao.ErrInvalidID
	}
	if err := s.decisions.Insert(ctx, d); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return fmt.Errorf("proposal %s: %w", d.ProposalID, ledger.ErrDuplicateDecision)
		}
		return err
	}
	return nil
}

func (s *service) Decision(ctx context.Context, proposalID string) (*decision.Decision, error) {
	if proposalID == "" {
		return nil, dao.ErrInvalidID
	}
	return s.decisions.Load(ctx, proposalID)
}

func (s *service) Decided(ctx context.Context, proposalID string) (bool, error) {
	d, err := s.Decision(ctx, proposalID)
	if err != nil {
		return false, err
	}
	return d != nil, nil
}

func (s *service) List(ctx context.Context) ([]*decision.Decision, error) {
	return s.decisions.List(ctx)
}

func (s *service) DecisionsForDomain(ctx context.Context, domain proposal.Domain) ([]*decision.Decision, error) {
	all, err := s.decisions.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*decision.Decision, 0, len(all))
	for _, d := range all {
		if d.Domain == domain {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// Export serialises the whole ledger and uploads it in a single operation so
// that a reader never observes a partial snapshot.
func (s *service) Export(ctx context.Context, URL string) error {
	all, err := s.decisions.List(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to export ledger to %s: %w", URL, err)
	}
	return nil
}

var _ ledger.Service = (*service)(nil)
