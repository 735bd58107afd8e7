// Package ledger defines the append-only decision record. Decisions are
// keyed by proposal id, never deleted and never revised – the ledger is the
// audit trail the rest of the system reads pending state from.
package ledger
