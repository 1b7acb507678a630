package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	BorrowInstructionArgsSize = (8 + // principal_amount
		ClientIdSize + // bulk_uuid
		ClientIdSize) // client_loan_id
)

type BorrowInstructionArgs struct {
	Principal    uint64
	BulkUuid     ClientId
	ClientLoanId ClientId
}

type BorrowInstructionAccounts struct {
	Offer                    ed25519.PublicKey
	Loan                     ed25519.PublicKey
	LenderUser               ed25519.PublicKey
	LenderOwner              ed25519.PublicKey
	BorrowerUser             ed25519.PublicKey
	Authority                ed25519.PublicKey
	BorrowerCollateralWallet ed25519.PublicKey
	BorrowerPrincipalWallet  ed25519.PublicKey
	SourcePrincipalWallet    ed25519.PublicKey
	EscrowWallet             ed25519.PublicKey
	CollateralFeeReceiver    ed25519.PublicKey
	Pair                     ed25519.PublicKey
	CollateralMint           ed25519.PublicKey
	ProgramAuthority         ed25519.PublicKey
}

// NewBorrowInstruction takes principal out of an offer against the
// borrower's collateral. SourcePrincipalWallet is the lender's program token
// wallet for the pair's principal mint.
func NewBorrowInstruction(
	accounts *BorrowInstructionAccounts,
	args *BorrowInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+BorrowInstructionArgsSize)

	putInstructionType(data, InstructionTypeBorrow, &offset)
	binary.PutUint64(data, args.Principal, &offset)
	putClientId(data, args.BulkUuid, &offset)
	putClientId(data, args.ClientLoanId, &offset)

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
				PublicKey:  accounts.LenderOwner,
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
				PublicKey:  accounts.BorrowerPrincipalWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SourcePrincipalWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.EscrowWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CollateralFeeReceiver,
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

func DecodeBorrowInstructionArgs(data []byte) (*BorrowInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeBorrow, BorrowInstructionArgsSize); err != nil {
		return nil, err
	}

	var args BorrowInstructionArgs
	offset := 1
	binary.GetUint64(data, &args.Principal, &offset)
	getClientId(data, &args.BulkUuid, &offset)
	getClientId(data, &args.ClientLoanId, &offset)
	return &args, nil
}
