package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	CreateUserInstructionArgsSize = MaxNickSize // nick
)

type CreateUserInstructionArgs struct {
	Nick Nick
}

type CreateUserInstructionAccounts struct {
	User  ed25519.PublicKey
	Owner ed25519.PublicKey
}

func NewCreateUserInstruction(
	accounts *CreateUserInstructionAccounts,
	args *CreateUserInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+CreateUserInstructionArgsSize)

	putInstructionType(data, InstructionTypeCreateUser, &offset)
	binary.PutBytes(data, args.Nick[:], &offset)

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
				PublicKey:  accounts.Owner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func DecodeCreateUserInstructionArgs(data []byte) (*CreateUserInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeCreateUser, CreateUserInstructionArgsSize); err != nil {
		return nil, err
	}

	var args CreateUserInstructionArgs
	offset := 1
	binary.GetBytes(data, args.Nick[:], &offset)
	return &args, nil
}
