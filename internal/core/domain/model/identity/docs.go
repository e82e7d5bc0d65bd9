// Package identity models the authenticated party that invokes a core operation.
//
// An Identity is one of three closed variants: Shipper, Carrier or Admin. Each
// variant carries the payload its role requires, so a carrier without an MC number
// or a shipper without a company name cannot be represented. Handlers receive the
// identity as an explicit argument; nothing reads it from ambient state.
package identity
