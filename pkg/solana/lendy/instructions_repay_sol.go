package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type RepaySolInstructionAccounts struct {
	Loan                     ed25519.PublicKey
	LenderUser               ed25519.PublicKey
	LenderOwner              ed25519.PublicKey
	BorrowerUser             ed25519.PublicKey
	Authority                ed25519.PublicKey
	BorrowerCollateralWallet ed25519.PublicKey
	EscrowWallet             ed25519.PublicKey
	ProgramAuthority         ed25519.PublicKey
	Pair                     ed25519.PublicKey
}

// NewRepaySolInstruction repays a loan whose principal is native SOL. The
// lender owner receives lamports directly.
func NewRepaySolInstruction(
	accounts *RepaySolInstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeRepaySol)}

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
				PublicKey:  accounts.LenderOwner,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.BorrowerUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.BorrowerCollateralWallet,
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
				PublicKey:  accounts.Pair,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func IsRepaySolInstruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeRepaySol, 0) == nil
}
