// Package kernel provides the value objects shared by every freight aggregate.
//
// The package includes:
//   - UUID: identifier for loads, offers, chat messages and parties
//   - Money: positive amount in cents used for rates and offer amounts
//   - DomainEvent / EventSource / EventRecorder: facts recorded by aggregates and
//     published after a successful commit
//
// Value objects are immutable; their zero values fail Validate.
package kernel
