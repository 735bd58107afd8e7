// Package event defines the envelope and topic vocabulary for council
// notifications. Consumers subscribe through the messaging queue exposed by
// the root service; the core never blocks on a slow consumer.
package event
