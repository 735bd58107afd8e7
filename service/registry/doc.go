// Package registry creates proposals with collision-free, creation-ordered
// identity and tracks submission order. Pending state is derived by joining
// the registered proposals against the decision ledger.
package registry
