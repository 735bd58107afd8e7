// Package tracing integrates observability back-ends with the council core.
// Every deliberation is wrapped in a span carrying the proposal id, domain
// and risk level. Instrumentation is kept in a separate package so that
// applications which do not require tracing can exclude it from their build.
package tracing
