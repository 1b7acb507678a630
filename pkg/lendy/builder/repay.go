package builder

import (
	"context"
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/lendy/reader"
	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
)

type repayAccounts struct {
	loan                     ed25519.PublicKey
	lenderUser               ed25519.PublicKey
	lenderOwner              ed25519.PublicKey
	borrowerUser             ed25519.PublicKey
	borrowerPrincipalWallet  ed25519.PublicKey
	borrowerCollateralWallet ed25519.PublicKey
	lenderPrincipalWallet    ed25519.PublicKey
	escrow                   ed25519.PublicKey
	programAuthority         ed25519.PublicKey
	pair                     ed25519.PublicKey
	principalFeeReceiver     ed25519.PublicKey
}

// resolveRepay reads the loan, then the lender's User account and the pair in
// one batch.
func (b *Builder) resolveRepay(ctx context.Context, loanAddress, pairAddress ed25519.PublicKey) (*repayAccounts, error) {
	loan, err := b.reader.GetLoan(ctx, loanAddress)
	if err != nil {
		return nil, err
	}

	var lender lendy.UserAccount
	var pair lendy.PairAccount
	if err := b.reader.FetchMany(ctx, []reader.Request{
		{Address: loan.Lender, Dst: &lender},
		{Address: pairAddress, Dst: &pair},
	}); err != nil {
		return nil, err
	}

	res := &repayAccounts{
		loan:                 loanAddress,
		lenderUser:           loan.Lender,
		lenderOwner:          lender.Owner,
		pair:                 pairAddress,
		principalFeeReceiver: pair.PrincipalFeeReceiver,
	}

	if res.borrowerUser, err = b.UserAddress(); err != nil {
		return nil, err
	}
	if res.escrow, err = escrowAddress(loanAddress); err != nil {
		return nil, err
	}
	if res.programAuthority, err = programAuthorityAddress(); err != nil {
		return nil, err
	}
	if res.borrowerCollateralWallet, err = associatedAddress(b.authority, pair.CollateralMint); err != nil {
		return nil, err
	}
	if res.borrowerPrincipalWallet, err = associatedAddress(b.authority, pair.PrincipalMint); err != nil {
		return nil, err
	}
	// The lender's owner may itself be a program address.
	if res.lenderPrincipalWallet, err = associatedAddress(lender.Owner, pair.PrincipalMint); err != nil {
		return nil, err
	}

	return res, nil
}

func (b *Builder) Repay(ctx context.Context, loan, pair ed25519.PublicKey) (solana.Instruction, error) {
	res, err := b.resolveRepay(ctx, loan, pair)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeRepay, lendy.NewRepayInstruction(
		&lendy.RepayInstructionAccounts{
			Loan:                     res.loan,
			LenderUser:               res.lenderUser,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerPrincipalWallet:  res.borrowerPrincipalWallet,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			LenderPrincipalWallet:    res.lenderPrincipalWallet,
			EscrowWallet:             res.escrow,
			ProgramAuthority:         res.programAuthority,
		},
	)), nil
}

// Repay2 is Repay for program versions that charge the pair's principal fee.
func (b *Builder) Repay2(ctx context.Context, loan, pair ed25519.PublicKey) (solana.Instruction, error) {
	res, err := b.resolveRepay(ctx, loan, pair)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeRepay2, lendy.NewRepay2Instruction(
		&lendy.Repay2InstructionAccounts{
			Loan:                     res.loan,
			LenderUser:               res.lenderUser,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerPrincipalWallet:  res.borrowerPrincipalWallet,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			LenderPrincipalWallet:    res.lenderPrincipalWallet,
			EscrowWallet:             res.escrow,
			PrincipalFeeReceiver:     res.principalFeeReceiver,
			Pair:                     res.pair,
			ProgramAuthority:         res.programAuthority,
		},
	)), nil
}

func (b *Builder) RepaySol(ctx context.Context, loan, pair ed25519.PublicKey) (solana.Instruction, error) {
	res, err := b.resolveRepay(ctx, loan, pair)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeRepaySol, lendy.NewRepaySolInstruction(
		&lendy.RepaySolInstructionAccounts{
			Loan:                     res.loan,
			LenderUser:               res.lenderUser,
			LenderOwner:              res.lenderOwner,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			EscrowWallet:             res.escrow,
			ProgramAuthority:         res.programAuthority,
			Pair:                     res.pair,
		},
	)), nil
}

func (b *Builder) RepaySol2(ctx context.Context, loan, pair ed25519.PublicKey) (solana.Instruction, error) {
	res, err := b.resolveRepay(ctx, loan, pair)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeRepaySol2, lendy.NewRepaySol2Instruction(
		&lendy.RepaySol2InstructionAccounts{
			Loan:                     res.loan,
			LenderUser:               res.lenderUser,
			LenderOwner:              res.lenderOwner,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			EscrowWallet:             res.escrow,
			PrincipalFeeReceiver:     res.principalFeeReceiver,
			ProgramAuthority:         res.programAuthority,
			Pair:                     res.pair,
		},
	)), nil
}
