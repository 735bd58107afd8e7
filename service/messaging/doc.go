// Package messaging defines the abstract queue used to fan council events
// (proposal submitted, decision created) out to interested consumers such as
// notification or status-reporting components.
package messaging
