package rulegate

// Operator identifies the comparison a predicate applies.
type Operator string

const (
	OpEqual    Operator = "eq"
	OpNotEqual Operator = "ne"
)

// Context carries the action attributes a caller supplies alongside a
// proposal: action_type, risk_level and any extension keys. Predicates only
// ever see the keys that are present.
type Context map[string]string

// Well-known context keys.
const (
	KeyActionType = "action_type"
	KeyRiskLevel  = "risk_level"
)

// Predicate compares a single context field against a literal value. A field
// missing from the context evaluates to false regardless of the operator;
// unknown keys are never an error.
type Predicate struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
}

// Matches evaluates the predicate against the supplied context.
func (p *Predicate) Matches(ctx Context) bool {
	actual, ok := ctx[p.Field]
	if !ok {
		return false
	}
	switch p.Operator {
	case OpEqual, "":
		return actual == p.Value
	case OpNotEqual:
		return actual != p.Value
	}
	return false
}

// Rule is a named conjunction of predicates. All conditions must hold for the
// rule to match.
type Rule struct {
	Name       string      `json:"name" yaml:"name"`
	Conditions []Predicate `json:"conditions" yaml:"conditions"`
	Reason     string      `json:"reason" yaml:"reason"`
}

// Matches reports whether every condition holds against the context.
func (r *Rule) Matches(ctx Context) bool {
	for i := range r.Conditions {
		if !r.Conditions[i].Matches(ctx) {
			return false
		}
	}
	return true
}

// Outcome is the result of a gate evaluation.
type Outcome struct {
	AutoApproved bool   `json:"auto_approved"`
	Rule         string `json:"rule,omitempty"`
	Reason       string `json:"reason"`
}

// Gate holds an ordered rule list. Evaluation is first-match-wins: rules are
// tried in list order and the first full match short-circuits – a later rule
// never overrides an earlier one even when it would also match.
type Gate struct {
	rules []Rule
}

// New creates a gate over the supplied ordered rules.
func New(rules ...Rule) *Gate {
	return &Gate{rules: rules}
}

// Rules returns a copy of the ordered rule list.
func (g *Gate) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Evaluate tries the rules in order against the context.
func (g *Gate) Evaluate(ctx Context) Outcome {
	for i := range g.rules {
		if g.rules[i].Matches(ctx) {
			return Outcome{
				AutoApproved: true,
				Rule:         g.rules[i].Name,
				Reason:       g.rules[i].Reason,
			}
		}
	}
	return Outcome{Reason: "no auto-approve rule matches"}
}
