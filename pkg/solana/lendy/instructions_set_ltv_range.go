package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	SetLtvRangeInstructionArgsSize = (2 + // min_ltv_bps
		2) // max_ltv_bps
)

type SetLtvRangeInstructionArgs struct {
	MinLtvBps uint16
	MaxLtvBps uint16
}

type SetLtvRangeInstructionAccounts struct {
	Offer      ed25519.PublicKey
	LenderUser ed25519.PublicKey
	Authority  ed25519.PublicKey
	Pair       ed25519.PublicKey
}

func NewSetLtvRangeInstruction(
	accounts *SetLtvRangeInstructionAccounts,
	args *SetLtvRangeInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+SetLtvRangeInstructionArgsSize)

	putInstructionType(data, InstructionTypeSetLtvRange, &offset)
	binary.PutUint16(data, args.MinLtvBps, &offset)
	binary.PutUint16(data, args.MaxLtvBps, &offset)

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
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Pair,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}

func DecodeSetLtvRangeInstructionArgs(data []byte) (*SetLtvRangeInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeSetLtvRange, SetLtvRangeInstructionArgsSize); err != nil {
		return nil, err
	}

	var args SetLtvRangeInstructionArgs
	offset := 1
	binary.GetUint16(data, &args.MinLtvBps, &offset)
	binary.GetUint16(data, &args.MaxLtvBps, &offset)
	return &args, nil
}
