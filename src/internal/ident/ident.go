// Package ident generates the opaque identifiers used for every record
// created at runtime. KSUIDs carry a timestamp prefix and a random payload,
// so they sort by creation time and do not collide within a session.
package ident

import "github.com/segmentio/ksuid"

// New returns a fresh opaque identifier.
func New() string {
	return ksuid.New().String()
}
