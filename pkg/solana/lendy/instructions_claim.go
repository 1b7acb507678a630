package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type ClaimInstructionAccounts struct {
	Loan                   ed25519.PublicKey
	LenderUser             ed25519.PublicKey
	BorrowerUser           ed25519.PublicKey
	BorrowerOwner          ed25519.PublicKey
	Authority              ed25519.PublicKey
	LenderCollateralWallet ed25519.PublicKey
	EscrowWallet           ed25519.PublicKey
	ProgramAuthority       ed25519.PublicKey
}

// NewClaimInstruction moves the collateral of a defaulted loan to the lender.
func NewClaimInstruction(
	accounts *ClaimInstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeClaim)}

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Loan,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.LenderUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.BorrowerUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.BorrowerOwner,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.LenderCollateralWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.EscrowWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ProgramAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func IsClaimInstruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeClaim, 0) == nil
}
