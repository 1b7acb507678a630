package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	MakeOfferInstructionArgsSize = (ClientIdSize + // client_offer_id
		8 + // principal
		8) // collateral
)

type MakeOfferInstructionArgs struct {
	ClientOfferId ClientId
	Principal     uint64
	Collateral    uint64
}

type MakeOfferInstructionAccounts struct {
	Offer      ed25519.PublicKey
	LenderUser ed25519.PublicKey
	Authority  ed25519.PublicKey
	Pair       ed25519.PublicKey
}

func NewMakeOfferInstruction(
	accounts *MakeOfferInstructionAccounts,
	args *MakeOfferInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+MakeOfferInstructionArgsSize)

	putInstructionType(data, InstructionTypeMakeOffer, &offset)
	putClientId(data, args.ClientOfferId, &offset)
	binary.PutUint64(data, args.Principal, &offset)
	binary.PutUint64(data, args.Collateral, &offset)

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
			{
				PublicKey:  accounts.Pair,
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

func DecodeMakeOfferInstructionArgs(data []byte) (*MakeOfferInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeMakeOffer, MakeOfferInstructionArgsSize); err != nil {
		return nil, err
	}

	var args MakeOfferInstructionArgs
	offset := 1
	getClientId(data, &args.ClientOfferId, &offset)
	binary.GetUint64(data, &args.Principal, &offset)
	binary.GetUint64(data, &args.Collateral, &offset)
	return &args, nil
}
