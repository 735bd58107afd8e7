package rulegate

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ruleSet is the on-disk shape of a rule document.
type ruleSet struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule set from a YAML document at the specified
// URL (any scheme supported by afs: file, mem, embed, s3, gs...).
//
// Document shape:
//
//	rules:
//	  - name: Read-Only Queries
//	    conditions:
//	      - {field: action_type, operator: eq, value: read}
//	      - {field: risk_level, operator: eq, value: low}
//	    reason: Read operations are safe
func LoadRules(ctx context.Context, fs afs.Service, URL string) ([]Rule, error) {
	if !strings.HasSuffix(URL, ".yaml") && !strings.HasSuffix(URL, ".yml") {
		URL += ".yaml"
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule set %s: %w", URL, err)
	}
	var doc ruleSet
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rule set %s: %w", URL, err)
	}
	for i := range doc.Rules {
		if err = validateRule(&doc.Rules[i]); err != nil {
			return nil, fmt.Errorf("invalid rule %d in %s: %w", i, URL, err)
		}
	}
	return doc.Rules, nil
}

func validateRule(rule *Rule) error {
	if rule.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if len(rule.Conditions) == 0 {
		return fmt.Errorf("rule %q has no conditions", rule.Name)
	}
	for i := range rule.Conditions {
		cond := &rule.Conditions[i]
		if cond.Field == "" {
			return fmt.Errorf("rule %q condition %d has no field", rule.Name, i)
		}
		switch cond.Operator {
		case OpEqual, OpNotEqual, "":
		default:
			return fmt.Errorf("rule %q condition %d has unknown operator %q", rule.Name, i, cond.Operator)
		}
	}
	return nil
}
