package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	SplitLoanByCollateralInstructionArgsSize = (8 + // new_loan_collateral
		ClientIdSize) // client_loan_id
)

type SplitLoanByCollateralInstructionArgs struct {
	NewLoanCollateral uint64
	ClientLoanId      ClientId
}

type SplitLoanByCollateralInstructionAccounts struct {
	Loan             ed25519.PublicKey
	NewLoan          ed25519.PublicKey
	Authority        ed25519.PublicKey
	EscrowWallet     ed25519.PublicKey
	NewEscrowWallet  ed25519.PublicKey
	Pair             ed25519.PublicKey
	CollateralMint   ed25519.PublicKey
	ProgramAuthority ed25519.PublicKey
}

func NewSplitLoanByCollateralInstruction(
	accounts *SplitLoanByCollateralInstructionAccounts,
	args *SplitLoanByCollateralInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+SplitLoanByCollateralInstructionArgsSize)

	putInstructionType(data, InstructionTypeSplitLoanByCollateral, &offset)
	binary.PutUint64(data, args.NewLoanCollateral, &offset)
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
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.EscrowWallet,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewEscrowWallet,
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

func DecodeSplitLoanByCollateralInstructionArgs(data []byte) (*SplitLoanByCollateralInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeSplitLoanByCollateral, SplitLoanByCollateralInstructionArgsSize); err != nil {
		return nil, err
	}

	var args SplitLoanByCollateralInstructionArgs
	offset := 1
	binary.GetUint64(data, &args.NewLoanCollateral, &offset)
	getClientId(data, &args.ClientLoanId, &offset)
	return &args, nil
}
