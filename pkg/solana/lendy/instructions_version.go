package lendy

import (
	"github.com/lendy-labs/lendy-go/pkg/solana"
)

// NewVersionInstruction asks the program to log its version.
func NewVersionInstruction() solana.Instruction {
	return solana.Instruction{
		Program: PROGRAM_ADDRESS,
		Data:    []byte{byte(InstructionTypeVersion)},
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
