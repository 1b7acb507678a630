package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

var (
	UserPrefix      = []byte("MONEY_LENDER_USER")
	PairPrefix      = []byte("PAIR")
	OfferPrefix     = []byte("OFFER")
	LoanPrefix      = []byte("LOAN")
	EscrowPrefix    = []byte("ESCROW")
	AuthorityPrefix = []byte("AUTHORITY")
	UnwrapPrefix    = []byte("UNWRAP")
)

type GetUserAddressArgs struct {
	Owner ed25519.PublicKey
}

func GetUserAddress(args *GetUserAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.Owner,
		UserPrefix,
	)
}

type GetLoanAddressArgs struct {
	ClientLoanId ClientId
	BorrowerUser ed25519.PublicKey
}

func GetLoanAddress(args *GetLoanAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.ClientLoanId[:],
		args.BorrowerUser,
		LoanPrefix,
	)
}

type GetOfferAddressArgs struct {
	ClientOfferId ClientId
	LenderUser    ed25519.PublicKey
}

func GetOfferAddress(args *GetOfferAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.ClientOfferId[:],
		args.LenderUser,
		OfferPrefix,
	)
}

// GetTokenWalletAddressArgs addresses the program owned token wallet of a
// user. Owner is the User account, not the user's wallet.
type GetTokenWalletAddressArgs struct {
	Owner ed25519.PublicKey
	Mint  ed25519.PublicKey
}

func GetTokenWalletAddress(args *GetTokenWalletAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.Owner,
		args.Mint,
	)
}

type GetEscrowWalletAddressArgs struct {
	Loan ed25519.PublicKey
}

func GetEscrowWalletAddress(args *GetEscrowWalletAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.Loan,
		EscrowPrefix,
	)
}

func GetProgramAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		AuthorityPrefix,
	)
}

func GetUnwrapWalletAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		UnwrapPrefix,
	)
}
