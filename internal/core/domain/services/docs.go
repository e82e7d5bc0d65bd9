// Package services provides domain services that span the load and offer aggregates.
//
// The package includes:
//   - Negotiator: resolves a shipper's accept/reject decision on an offer
//   - ChatGate: decides who may read and write a load's chat and whether it is open
package services
