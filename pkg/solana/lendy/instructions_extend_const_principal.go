package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

const (
	ExtendConstPrincipalInstructionArgsSize = (ClientIdSize + // bulk_uuid
		ClientIdSize) // client_loan_id
)

type ExtendConstPrincipalInstructionArgs struct {
	BulkUuid     ClientId
	ClientLoanId ClientId
}

type ExtendConstPrincipalInstructionAccounts struct {
	Loan                     ed25519.PublicKey
	NewLoan                  ed25519.PublicKey
	Offer                    ed25519.PublicKey
	OldLenderUser            ed25519.PublicKey
	OldLenderOwner           ed25519.PublicKey
	NewLenderUser            ed25519.PublicKey
	NewLenderOwner           ed25519.PublicKey
	BorrowerUser             ed25519.PublicKey
	Authority                ed25519.PublicKey
	BorrowerCollateralWallet ed25519.PublicKey
	SourcePrincipalWallet    ed25519.PublicKey
	OldEscrowWallet          ed25519.PublicKey
	NewEscrowWallet          ed25519.PublicKey
	CollateralFeeReceiver    ed25519.PublicKey
	PrincipalFeeReceiver     ed25519.PublicKey
	UnwrapWallet             ed25519.PublicKey
	Pair                     ed25519.PublicKey
	CollateralMint           ed25519.PublicKey
	ProgramAuthority         ed25519.PublicKey
}

// NewExtendConstPrincipalInstruction rolls a loan over to a new offer keeping
// the principal. The source principal wallet is passed in two consecutive
// slots; deployed program versions read both.
func NewExtendConstPrincipalInstruction(
	accounts *ExtendConstPrincipalInstructionAccounts,
	args *ExtendConstPrincipalInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+ExtendConstPrincipalInstructionArgsSize)

	putInstructionType(data, InstructionTypeExtendConstPrincipal, &offset)
	putClientId(data, args.BulkUuid, &offset)
	putClientId(data, args.ClientLoanId, &offset)

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
				PublicKey:  accounts.NewLoan,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Offer,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OldLenderUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OldLenderOwner,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewLenderUser,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewLenderOwner,
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
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.BorrowerCollateralWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SourcePrincipalWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SourcePrincipalWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OldEscrowWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewEscrowWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollateralFeeReceiver,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.PrincipalFeeReceiver,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.UnwrapWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Pair,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollateralMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  token.NativeMint,
				IsWritable: false,
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
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func DecodeExtendConstPrincipalInstructionArgs(data []byte) (*ExtendConstPrincipalInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeExtendConstPrincipal, ExtendConstPrincipalInstructionArgsSize); err != nil {
		return nil, err
	}

	var args ExtendConstPrincipalInstructionArgs
	offset := 1
	getClientId(data, &args.BulkUuid, &offset)
	getClientId(data, &args.ClientLoanId, &offset)
	return &args, nil
}
