package rulegate

// DefaultRules returns the stock auto-approve rule set: read-only, status,
// internal-memory-write and local-file-read actions at low (or none) risk
// skip deliberation, everything else falls through to the council.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "Internal Memory Operations",
			Conditions: []Predicate{
				{Field: KeyActionType, Operator: OpEqual, Value: "memory_write"},
				{Field: KeyRiskLevel, Operator: OpEqual, Value: "low"},
			},
			Reason: "Memory operations are safe",
		},
		{
			Name: "Read-Only Queries",
			Conditions: []Predicate{
				{Field: KeyActionType, Operator: OpEqual, Value: "read"},
				{Field: KeyRiskLevel, Operator: OpEqual, Value: "low"},
			},
			Reason: "Read operations are safe",
		},
		{
			Name: "Local File Reads",
			Conditions: []Predicate{
				{Field: KeyActionType, Operator: OpEqual, Value: "file_read"},
				{Field: KeyRiskLevel, Operator: OpEqual, Value: "low"},
			},
			Reason: "Reading local files is safe",
		},
		{
			Name: "Status Checks",
			Conditions: []Predicate{
				{Field: KeyActionType, Operator: OpEqual, Value: "status_check"},
				{Field: KeyRiskLevel, Operator: OpEqual, Value: "none"},
			},
			Reason: "Status checks are always safe",
		},
	}
}
