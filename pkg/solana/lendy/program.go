// Package lendy contains the account layouts, address derivations and
// instruction encodings of the Lendy lending program.
package lendy

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/lendy-labs/lendy-go/pkg/solana/system"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

var (
	// ErrLayoutMismatch is returned when a buffer does not have the exact
	// width of the layout it is decoded as.
	ErrLayoutMismatch = errors.New("layout mismatch")

	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrNickTooLong            = errors.New("nick too long")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("LendZqTs7gn5CTSJU1jWKhKuVpjJGom45nnwPb2AMTi")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID    = system.ProgramKey
	SPL_TOKEN_PROGRAM_ID = token.ProgramKey
)

// Account is implemented by every decoded program account.
type Account interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
