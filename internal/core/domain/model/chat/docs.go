// Package chat holds the append-only messages exchanged on a load between its
// shipper, its assigned carrier and admins. Messages are never edited or deleted.
package chat
