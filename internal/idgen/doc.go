// Package idgen generates proposal identifiers. It lives under `internal`
// because callers should not rely on its exact behaviour or format – they
// should treat identifiers as opaque, creation-ordered strings.
package idgen
