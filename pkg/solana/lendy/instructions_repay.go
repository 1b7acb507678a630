package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type RepayInstructionAccounts struct {
	Loan                     ed25519.PublicKey
	LenderUser               ed25519.PublicKey
	BorrowerUser             ed25519.PublicKey
	Authority                ed25519.PublicKey
	BorrowerPrincipalWallet  ed25519.PublicKey
	BorrowerCollateralWallet ed25519.PublicKey
	LenderPrincipalWallet    ed25519.PublicKey
	EscrowWallet             ed25519.PublicKey
	ProgramAuthority         ed25519.PublicKey
}

func NewRepayInstruction(
	accounts *RepayInstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeRepay)}

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
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.BorrowerPrincipalWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.BorrowerCollateralWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.LenderPrincipalWallet,
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

func IsRepayInstruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeRepay, 0) == nil
}
