package builder

import (
	"context"
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
)

type splitAccounts struct {
	newLoan          ed25519.PublicKey
	escrow           ed25519.PublicKey
	newEscrow        ed25519.PublicKey
	programAuthority ed25519.PublicKey
	pair             ed25519.PublicKey
	collateralMint   ed25519.PublicKey
}

func (b *Builder) resolveSplit(ctx context.Context, loanAddress ed25519.PublicKey, clientLoanId lendy.ClientId) (*splitAccounts, error) {
	borrowerUser, err := b.UserAddress()
	if err != nil {
		return nil, err
	}

	loan, err := b.reader.GetLoan(ctx, loanAddress)
	if err != nil {
		return nil, err
	}

	pair, err := b.reader.GetPair(ctx, loan.Pair)
	if err != nil {
		return nil, err
	}

	res := &splitAccounts{
		pair:           loan.Pair,
		collateralMint: pair.CollateralMint,
	}
	if res.newLoan, err = deriveLoanAddress(clientLoanId, borrowerUser); err != nil {
		return nil, err
	}
	if res.escrow, err = escrowAddress(loanAddress); err != nil {
		return nil, err
	}
	if res.newEscrow, err = escrowAddress(res.newLoan); err != nil {
		return nil, err
	}
	if res.programAuthority, err = programAuthorityAddress(); err != nil {
		return nil, err
	}
	return res, nil
}

// SplitLoanByPrincipal carves newPrincipal out of loan into a new loan
// identified by clientLoanId.
func (b *Builder) SplitLoanByPrincipal(ctx context.Context, loan ed25519.PublicKey, clientLoanId lendy.ClientId, newPrincipal uint64) (solana.Instruction, error) {
	res, err := b.resolveSplit(ctx, loan, clientLoanId)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeSplitLoanByPrincipal, lendy.NewSplitLoanByPrincipalInstruction(
		&lendy.SplitLoanByPrincipalInstructionAccounts{
			Loan:             loan,
			NewLoan:          res.newLoan,
			Authority:        b.authority,
			EscrowWallet:     res.escrow,
			NewEscrowWallet:  res.newEscrow,
			Pair:             res.pair,
			CollateralMint:   res.collateralMint,
			ProgramAuthority: res.programAuthority,
		},
		&lendy.SplitLoanByPrincipalInstructionArgs{
			NewLoanPrincipal: newPrincipal,
			ClientLoanId:     clientLoanId,
		},
	)), nil
}

func (b *Builder) SplitLoanByCollateral(ctx context.Context, loan ed25519.PublicKey, clientLoanId lendy.ClientId, newCollateral uint64) (solana.Instruction, error) {
	res, err := b.resolveSplit(ctx, loan, clientLoanId)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeSplitLoanByCollateral, lendy.NewSplitLoanByCollateralInstruction(
		&lendy.SplitLoanByCollateralInstructionAccounts{
			Loan:             loan,
			NewLoan:          res.newLoan,
			Authority:        b.authority,
			EscrowWallet:     res.escrow,
			NewEscrowWallet:  res.newEscrow,
			Pair:             res.pair,
			CollateralMint:   res.collateralMint,
			ProgramAuthority: res.programAuthority,
		},
		&lendy.SplitLoanByCollateralInstructionArgs{
			NewLoanCollateral: newCollateral,
			ClientLoanId:      clientLoanId,
		},
	)), nil
}
