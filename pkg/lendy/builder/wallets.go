package builder

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
)

// SetupTokenWallet creates the authority's program token wallet for mint.
func (b *Builder) SetupTokenWallet(mint ed25519.PublicKey) (solana.Instruction, error) {
	user, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	wallet, err := tokenWalletAddress(user, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	programAuthority, err := programAuthorityAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeSetupTokenWallet, lendy.NewSetupTokenWalletInstruction(
		&lendy.SetupTokenWalletInstructionAccounts{
			User:             user,
			Authority:        b.authority,
			TokenWallet:      wallet,
			ProgramAuthority: programAuthority,
			Mint:             mint,
		},
	)), nil
}

// DepositToken moves amount from the authority's associated token account
// into its program token wallet.
func (b *Builder) DepositToken(mint ed25519.PublicKey, amount uint64) (solana.Instruction, error) {
	user, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	source, err := associatedAddress(b.authority, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	wallet, err := tokenWalletAddress(user, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeDepositToken, lendy.NewDepositTokenInstruction(
		&lendy.DepositTokenInstructionAccounts{
			User:         user,
			Authority:    b.authority,
			SourceWallet: source,
			TokenWallet:  wallet,
		},
		&lendy.DepositTokenInstructionArgs{
			Amount: amount,
		},
	)), nil
}

func (b *Builder) WithdrawToken(mint ed25519.PublicKey, amount uint64) (solana.Instruction, error) {
	user, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	wallet, err := tokenWalletAddress(user, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	destination, err := associatedAddress(b.authority, mint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeWithdrawToken, lendy.NewWithdrawTokenInstruction(
		&lendy.WithdrawTokenInstructionAccounts{
			User:              user,
			Authority:         b.authority,
			TokenWallet:       wallet,
			DestinationWallet: destination,
		},
		&lendy.WithdrawTokenInstructionArgs{
			Amount: amount,
		},
	)), nil
}

func (b *Builder) Version() (solana.Instruction, error) {
	return b.built(lendy.InstructionTypeVersion, lendy.NewVersionInstruction()), nil
}
