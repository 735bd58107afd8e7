// Package proposal defines the immutable proposal entity together with its
// domain and risk-level vocabularies. Construction is the only place where
// invariants (priority range, enumerated risk level) are enforced – a value
// that exists is by definition valid.
package proposal
