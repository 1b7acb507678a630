// Package system exposes the well known system program address.
package system

import (
	"crypto/ed25519"
)

// ProgramKey is the system program, 11111111111111111111111111111111.
var ProgramKey = make(ed25519.PublicKey, ed25519.PublicKeySize)
