package lendy

import (
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/binary"
)

const (
	SplitLoanByPrincipalInstructionArgsSize = (8 + // new_loan_principal
		ClientIdSize) // client_loan_id
)

type SplitLoanByPrincipalInstructionArgs struct {
	NewLoanPrincipal uint64
	ClientLoanId     ClientId
}

type SplitLoanByPrincipalInstructionAccounts struct {
	Loan             ed25519.PublicKey
	NewLoan          ed25519.PublicKey
	Authority        ed25519.PublicKey
	EscrowWallet     ed25519.PublicKey
	NewEscrowWallet  ed25519.PublicKey
	Pair             ed25519.PublicKey
	CollateralMint   ed25519.PublicKey
	ProgramAuthority ed25519.PublicKey
}

func NewSplitLoanByPrincipalInstruction(
	accounts *SplitLoanByPrincipalInstructionAccounts,
	args *SplitLoanByPrincipalInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+SplitLoanByPrincipalInstructionArgsSize)

	putInstructionType(data, InstructionTypeSplitLoanByPrincipal, &offset)
	binary.PutUint64(data, args.NewLoanPrincipal, &offset)
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

func DecodeSplitLoanByPrincipalInstructionArgs(data []byte) (*SplitLoanByPrincipalInstructionArgs, error) {
	if err := checkInstructionData(data, InstructionTypeSplitLoanByPrincipal, SplitLoanByPrincipalInstructionArgsSize); err != nil {
		return nil, err
	}

	var args SplitLoanByPrincipalInstructionArgs
	offset := 1
	binary.GetUint64(data, &args.NewLoanPrincipal, &offset)
	getClientId(data, &args.ClientLoanId, &offset)
	return &args, nil
}
