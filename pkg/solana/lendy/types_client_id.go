package lendy

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const ClientIdSize = 16

// ClientId is the 16 byte identifier a client picks for its offers, loans
// and bulk operations.
type ClientId [ClientIdSize]byte

// NewClientIdFromString copies the UTF-8 bytes of s into a zeroed id. Input
// longer than 16 bytes is truncated.
func NewClientIdFromString(s string) ClientId {
	var id ClientId
	copy(id[:], s)
	return id
}

// NewRandomClientId returns the first 16 hex characters of a random v4 UUID.
func NewRandomClientId() ClientId {
	hexed := strings.ReplaceAll(uuid.New().String(), "-", "")
	return NewClientIdFromString(hexed[:ClientIdSize])
}

func (id ClientId) String() string {
	return trimFixed(id[:])
}

func (id ClientId) Hex() string {
	return hex.EncodeToString(id[:])
}

func putClientId(dst []byte, id ClientId, offset *int) {
	copy(dst[*offset:], id[:])
	*offset += ClientIdSize
}

func getClientId(src []byte, dst *ClientId, offset *int) {
	copy(dst[:], src[*offset:])
	*offset += ClientIdSize
}
