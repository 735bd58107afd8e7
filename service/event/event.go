package event

import "time"

// Standard event topics.
const (
	TopicProposalSubmitted = "proposal.submitted"
	TopicDecisionCreated   = "decision.created"
	TopicLedgerExported    = "ledger.exported"
)

// Event is the envelope published on the council queue.
// Data holds *proposal.Proposal or *decision.Decision depending on the topic.
type Event struct {
	Topic     string            `json:"topic"`
	Data      interface{}       `json:"data"`
	CreatedAt time.Time         `json:"createdAt"`
	Headers   map[string]string `json:"headers,omitempty"` // optional – tenant, correlation-id etc.
}
