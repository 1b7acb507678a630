package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	DepositTokenInstructionArgsSize = 8 // amount
)

type DepositTokenInstructionArgs struct {
	Amount uint64
}

type DepositTokenInstructionAccounts struct {
	User         ed25519.PublicKey
	Authority    ed25519.PublicKey
	SourceWallet ed25519.PublicKey
	TokenWallet  ed25519.PublicKey
}

func NewDepositTokenInstruction(
	accounts *DepositTokenInstructionAccounts,
	args *DepositTokenInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+DepositTokenInstructionArgsSize)

	putInstructionType(data, InstructionTypeDepositToken, &offset)
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
				PublicKey:  accounts.SourceWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TokenWallet,
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

func DecodeDepositTokenInstructionArgs(data []byte) (*DepositTokenInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeDepositToken, DepositTokenInstructionArgsSize); err != nil {
		return nil, err
	}

	var args DepositTokenInstructionArgs
	offset := 1
	binary.GetUint64(data, &args.Amount, &offset)
	return &args, nil
}
