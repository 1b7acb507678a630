package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

type CancelOfferInstructionAccounts struct {
	Offer      ed25519.PublicKey
	LenderUser ed25519.PublicKey
	Authority  ed25519.PublicKey
}

func NewCancelOfferInstruction(
	accounts *CancelOfferInstructionAccounts,
) solana.Instruction {
	data := []byte{byte(InstructionTypeCancelOffer)}

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Offer,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.LenderUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
		},
	}
}

func IsCancelOfferInstruction(data []byte) bool {
	return checkInstructionData(data, InstructionTypeCancelOffer, 0) == nil
}
