package council_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/viant/council"
	"github.com/viant/council/model/decision"
	"github.com/viant/council/model/proposal"
	"github.com/viant/council/service/event"
	"github.com/viant/council/service/ledger"
	"github.com/viant/council/service/rulegate"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	srv := council.New()

	// submit two proposals: one routine read, one external automation
	readCheck, err := srv.Submit(ctx, proposal.Spec{
		Title:       "Check inbox summary",
		Description: "read-only status query",
		Domain:      proposal.DomainWork,
		Priority:    2,
		RiskLevel:   proposal.RiskLow,
	})
	assert.NoError(t, err)

	automation, err := srv.Submit(ctx, proposal.Spec{
		Title:          "Deploy new automation script",
		Description:    "automated backup system for personal files",
		Domain:         proposal.DomainPersonal,
		Priority:       4,
		ExternalAction: true,
		EstimatedCost:  0.50,
		RiskLevel:      proposal.RiskLow,
	})
	assert.NoError(t, err)

	pending, err := srv.Pending(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, []*proposal.Proposal{readCheck, automation}, pending)

	// the read skips deliberation through the rule gate
	d1, err := srv.Deliberate(ctx, readCheck, rulegate.Context{
		rulegate.KeyActionType: "read",
		rulegate.KeyRiskLevel:  "low",
	})
	assert.NoError(t, err)
	assert.Equal(t, decision.VerdictApproved, d1.FinalVerdict)
	assert.Equal(t, "Read-Only Queries", d1.MatchedRule)
	assert.False(t, d1.RequiresHumanApproval)

	// the automation goes through the full council
	d2, err := srv.Deliberate(ctx, automation, rulegate.Context{
		rulegate.KeyActionType: "script_deploy",
		rulegate.KeyRiskLevel:  "low",
	})
	assert.NoError(t, err)
	assert.Equal(t, decision.VerdictApproved, d2.FinalVerdict)
	assert.Empty(t, d2.MatchedRule)
	assert.True(t, d2.Consensus)
	assert.Equal(t, decision.RatingConditional, d2.CouncilVotes[decision.RoleSkeptic])
	assert.False(t, d2.RequiresHumanApproval)

	// decided proposals never reappear as pending
	pending, err = srv.Pending(ctx)
	assert.NoError(t, err)
	assert.Empty(t, pending)

	// deciding twice is a programming error
	_, err = srv.Deliberate(ctx, automation, rulegate.Context{})
	assert.ErrorIs(t, err, ledger.ErrDuplicateDecision)

	// domain query surfaces only matching decisions in append order
	personal, err := srv.DecisionsForDomain(ctx, proposal.DomainPersonal)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(personal))
	assert.Equal(t, automation.ID, personal[0].ProposalID)

	// the event queue carries submissions and decisions in order
	topics := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		msg, err := srv.Queue().Consume(ctx)
		assert.NoError(t, err)
		topics = append(topics, msg.T().Topic)
		assert.NoError(t, msg.Ack())
	}
	assert.EqualValues(t, []string{
		event.TopicProposalSubmitted,
		event.TopicProposalSubmitted,
		event.TopicDecisionCreated,
		event.TopicDecisionCreated,
	}, topics)
}

func TestServiceCriticalRisk(t *testing.T) {
	ctx := context.Background()
	srv := council.New()

	p, err := srv.Submit(ctx, proposal.Spec{
		Title:          "Rotate production credentials",
		Domain:         proposal.DomainWork,
		Priority:       3,
		ExternalAction: true,
		RiskLevel:      proposal.RiskCritical,
	})
	assert.NoError(t, err)

	d, err := srv.Deliberate(ctx, p, rulegate.Context{
		rulegate.KeyActionType: "credential_rotation",
		rulegate.KeyRiskLevel:  "critical",
	})
	assert.NoError(t, err)
	// no critical-risk action may be silently approved
	assert.Equal(t, decision.VerdictRejected, d.FinalVerdict)
	assert.False(t, d.Consensus)
	assert.True(t, d.RequiresHumanApproval)
}

func TestServiceExport(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	srv := council.New(council.WithFS(fs))

	p, err := srv.Submit(ctx, proposal.Spec{
		Title:     "Snapshot notes",
		Domain:    proposal.DomainPersonal,
		Priority:  1,
		RiskLevel: proposal.RiskLow,
	})
	assert.NoError(t, err)
	_, err = srv.Deliberate(ctx, p, rulegate.Context{
		rulegate.KeyActionType: "memory_write",
		rulegate.KeyRiskLevel:  "low",
	})
	assert.NoError(t, err)

	URL := "mem://localhost/council/export.json"
	assert.NoError(t, srv.Export(ctx, URL))

	data, err := fs.DownloadWithURL(ctx, URL)
	assert.NoError(t, err)
	var exported []*decision.Decision
	assert.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, 1, len(exported))
	assert.Equal(t, "Internal Memory Operations", exported[0].MatchedRule)
}

func TestServiceCustomRules(t *testing.T) {
	ctx := context.Background()
	srv := council.New(council.WithRules(rulegate.Rule{
		Name: "Trusted Reports",
		Conditions: []rulegate.Predicate{
			{Field: rulegate.KeyActionType, Operator: rulegate.OpEqual, Value: "report"},
		},
		Reason: "reports are reviewed downstream",
	}))

	p, err := srv.Submit(ctx, proposal.Spec{
		Title:     "Weekly report",
		Domain:    proposal.DomainWork,
		Priority:  2,
		RiskLevel: proposal.RiskLow,
	})
	assert.NoError(t, err)

	// the stock rules are replaced: a plain read now deliberates
	d, err := srv.Deliberate(ctx, p, rulegate.Context{
		rulegate.KeyActionType: "read",
		rulegate.KeyRiskLevel:  "low",
	})
	assert.NoError(t, err)
	assert.Empty(t, d.MatchedRule)
}
