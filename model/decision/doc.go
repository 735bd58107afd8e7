// Package decision defines the decision entity appended to the ledger, the
// closed council role set and the rating vocabulary with its aggregation
// weights.
package decision
