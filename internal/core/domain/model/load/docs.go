// Package load implements the Load aggregate and its status transition guard.
//
// A load is posted by a shipper, receives offers while Posted, is bound to exactly one
// carrier when an offer is accepted, and is then driven by the carrier and the shipper
// through in_transit and delivered_pending until the shipper confirms delivery or
// cancels it. The transition table in status.go is the single authority on which
// (from, to, actor) combinations are legal.
package load
