// Package offer implements the Offer entity of the offer ledger: a carrier's bid on a
// load's rate. There is at most one offer per (load, carrier) pair; a resubmission
// overwrites the amount and message and reopens the bid as pending.
package offer
