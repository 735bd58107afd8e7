package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/ledger"
)

func newDecision(id string, domain proposal.Domain, verdict decision.Verdict) *decision.Decision {
	return &decision.Decision{
		ProposalID: id,
		Title:      "proposal " + id,
		Domain:     domain,
		DecidedAt:  time.Now(),
		CouncilVotes: map[decision.Role]decision.Rating{
			decision.RoleStrategist: decision.RatingSupport,
			decision.RoleSkeptic:    decision.RatingSupport,
			decision.RoleGuardian:   decision.RatingApproved,
			decision.RoleModerator:  decision.RatingApproved,
		},
		FinalVerdict: verdict,
	}
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	svc := New()

	d1 := newDecision("p1", proposal.DomainPersonal, decision.VerdictApproved)
	assert.NoError(t, svc.Append(ctx, d1))

	// duplicate proposal id must fail without corrupting the ledger
	dup := newDecision("p1", proposal.DomainPersonal, decision.VerdictRejected)
	err := svc.Append(ctx, dup)
	assert.ErrorIs(t, err, ledger.ErrDuplicateDecision)

	all, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(all))
	assert.Equal(t, decision.VerdictApproved, all[0].FinalVerdict)

	decided, err := svc.Decided(ctx, "p1")
	assert.NoError(t, err)
	assert.True(t, decided)

	decided, err = svc.Decided(ctx, "p2")
	assert.NoError(t, err)
	assert.False(t, decided)
}

func TestAppendOrder(t *testing.T) {
	ctx := context.Background()
	svc := New()

	ids := []string{"p3", "p1", "p2"}
	for _, id := range ids {
		assert.NoError(t, svc.Append(ctx, newDecision(id, proposal.DomainWork, decision.VerdictApproved)))
	}

	all, err := svc.List(ctx)
	assert.NoError(t, err)
	actual := make([]string, 0, len(all))
	for _, d := range all {
		actual = append(actual, d.ProposalID)
	}
	assert.EqualValues(t, ids, actual)
}

func TestDecisionsForDomain(t *testing.T) {
	ctx := context.Background()
	svc := New()

	assert.NoError(t, svc.Append(ctx, newDecision("p1", proposal.DomainPersonal, decision.VerdictApproved)))
	assert.NoError(t, svc.Append(ctx, newDecision("p2", proposal.DomainWork, decision.VerdictRejected)))
	assert.NoError(t, svc.Append(ctx, newDecision("p3", proposal.DomainPersonal, decision.VerdictApproved)))

	personal, err := svc.DecisionsForDomain(ctx, proposal.DomainPersonal)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(personal))
	assert.Equal(t, "p1", personal[0].ProposalID)
	assert.Equal(t, "p3", personal[1].ProposalID)

	work, err := svc.DecisionsForDomain(ctx, proposal.DomainWork)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(work))
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	svc := New(WithFS(fs))

	assert.NoError(t, svc.Append(ctx, newDecision("p1", proposal.DomainPersonal, decision.VerdictApproved)))
	assert.NoError(t, svc.Append(ctx, newDecision("p2", proposal.DomainWork, decision.VerdictRejected)))

	URL := "mem://localhost/council/decisions.json"
	assert.NoError(t, svc.Export(ctx, URL))

	data, err := fs.DownloadWithURL(ctx, URL)
	assert.NoError(t, err)

	var exported []*decision.Decision
	assert.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, 2, len(exported))
	assert.Equal(t, "p1", exported[0].ProposalID)
	assert.Equal(t, decision.VerdictRejected, exported[1].FinalVerdict)
	// the persisted vote map always carries all four roles
	assert.Equal(t, 4, len(exported[0].CouncilVotes))
}
