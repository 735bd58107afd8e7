package proposal

import (
	"errors"
	"fmt"
	"time"

	"github.com/viant/council/internal/clock"
	"github.com/viant/council/internal/idgen"
)

// Domain classifies the sphere a proposal belongs to.
type Domain string

const (
	DomainPersonal Domain = "personal"
	DomainWork     Domain = "work"
)

// RiskLevel is an ordinal safety classification of a proposed action.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid reports whether the risk level is one of the enumerated values.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ErrInvalid is returned when a proposal fails validation at submission time.
// Callers can detect it with errors.Is.
var ErrInvalid = errors.New("invalid proposal")

// Spec carries the caller-supplied attributes of a proposal; identity and the
// creation timestamp are assigned by New.
type Spec struct {
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description" yaml:"description"`
	Domain         Domain    `json:"domain" yaml:"domain"`
	Priority       int       `json:"priority" yaml:"priority"`
	ExternalAction bool      `json:"external_action" yaml:"externalAction"`
	EstimatedCost  float64   `json:"estimated_cost" yaml:"estimatedCost"`
	RiskLevel      RiskLevel `json:"risk_level" yaml:"riskLevel"`
}

// Validate checks the invariants that gate proposal construction.
func (s *Spec) Validate() error {
	if s.Priority < 1 || s.Priority > 5 {
		return fmt.Errorf("%w: priority %d outside 1..5", ErrInvalid, s.Priority)
	}
	if !s.RiskLevel.IsValid() {
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalid, s.RiskLevel)
	}
	if s.EstimatedCost < 0 {
		return fmt.Errorf("%w: negative estimated cost %v", ErrInvalid, s.EstimatedCost)
	}
	return nil
}

// Proposal is a candidate action submitted for arbitration. It is immutable
// once created; the JSON field names are the wire contract shared with
// downstream consumers of the decision ledger.
type Proposal struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Domain         Domain    `json:"domain"`
	Priority       int       `json:"priority"`
	ExternalAction bool      `json:"external_action"`
	EstimatedCost  float64   `json:"estimated_cost"`
	RiskLevel      RiskLevel `json:"risk_level"`
	CreatedAt      time.Time `json:"created_at"`
}

// New validates the supplied spec and materialises a proposal with a
// collision-free, creation-ordered identifier.
func New(spec Spec) (*Proposal, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Proposal{
		ID:             idgen.New(),
		Title:          spec.Title,
		Description:    spec.Description,
		Domain:         spec.Domain,
		Priority:       spec.Priority,
		ExternalAction: spec.ExternalAction,
		EstimatedCost:  spec.EstimatedCost,
		RiskLevel:      spec.RiskLevel,
		CreatedAt:      clock.Now(),
	}, nil
}
