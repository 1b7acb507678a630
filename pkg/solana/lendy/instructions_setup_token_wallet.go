package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type SetupTokenWalletInstructionAccounts struct {
	User             ed25519.PublicKey
	Authority        ed25519.PublicKey
	TokenWallet      ed25519.PublicKey
	ProgramAuthority ed25519.PublicKey
	Mint             ed25519.PublicKey
}

func NewSetupTokenWalletInstruction(
	accounts *SetupTokenWalletInstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeSetupTokenWallet)}

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.User,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TokenWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ProgramAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
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

func IsSetupTokenWalletInstruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeSetupTokenWallet, 0) == nil
}
