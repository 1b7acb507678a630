package lendy

import "github.com/pkg/errors"

const (
	MaxNickSize   = 14
	MaxSymbolSize = 22
)

// Nick is a user's display name as stored on chain. Trailing zero bytes are
// kept so records round-trip exactly.
type Nick [MaxNickSize]byte

// NewNick pads s with zero bytes. Names over MaxNickSize bytes are rejected.
func NewNick(s string) (Nick, error) {
	var nick Nick
	if len(s) > MaxNickSize {
		return nick, errors.Wrapf(ErrNickTooLong, "%d bytes exceeds %d", len(s), MaxNickSize)
	}
	copy(nick[:], s)
	return nick, nil
}

func (n Nick) String() string {
	return trimFixed(n[:])
}

// Symbol is a pair's ticker, e.g. "SOL/USDC".
type Symbol [MaxSymbolSize]byte

func NewSymbol(s string) Symbol {
	var symbol Symbol
	copy(symbol[:], s)
	return symbol
}

func (s Symbol) String() string {
	return trimFixed(s[:])
}
