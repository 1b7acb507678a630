package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type Repay2InstructionAccounts struct {
	Loan                     ed25519.PublicKey
	LenderUser               ed25519.PublicKey
	BorrowerUser             ed25519.PublicKey
	Authority                ed25519.PublicKey
	BorrowerPrincipalWallet  ed25519.PublicKey
	BorrowerCollateralWallet ed25519.PublicKey
	LenderPrincipalWallet    ed25519.PublicKey
	EscrowWallet             ed25519.PublicKey
	PrincipalFeeReceiver     ed25519.PublicKey
	Pair                     ed25519.PublicKey
	ProgramAuthority         ed25519.PublicKey
}

// NewRepay2Instruction is Repay with the pair's principal fee collected on
// repayment.
func NewRepay2Instruction(
	accounts *Repay2InstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeRepay2)}

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
				PublicKey:  accounts.PrincipalFeeReceiver,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Pair,
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

func IsRepay2Instruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeRepay2, 0) == nil
}
