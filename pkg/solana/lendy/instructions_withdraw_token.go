package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	WithdrawTokenInstructionArgsSize = 8 // amount
)

type WithdrawTokenInstructionArgs struct {
	Amount uint64
}

type WithdrawTokenInstructionAccounts struct {
	User              ed25519.PublicKey
	Authority         ed25519.PublicKey
	TokenWallet       ed25519.PublicKey
	DestinationWallet ed25519.PublicKey
}

func NewWithdrawTokenInstruction(
	accounts *WithdrawTokenInstructionAccounts,
	args *WithdrawTokenInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+WithdrawTokenInstructionArgsSize)

	putInstructionType(data, InstructionTypeWithdrawToken, &offset)
	binary.PutUint64(data, args.Amount, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.User,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TokenWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationWallet,
				IsWritable: true,
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

func DecodeWithdrawTokenInstructionArgs(data []byte) (*WithdrawTokenInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeWithdrawToken, WithdrawTokenInstructionArgsSize); err != nil {
		return nil, err
	}

	var args WithdrawTokenInstructionArgs
	offset := 1
	binary.GetUint64(data, &args.Amount, &offset)
	return &args, nil
}
