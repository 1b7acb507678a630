package builder

import (
	"context"
	"crypto/ed25519"

	"github.com/lendy-labs/lendy-go/pkg/lendy/reader"
	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

type extendAccounts struct {
	borrowerUser             ed25519.PublicKey
	newLoan                  ed25519.PublicKey
	oldLenderUser            ed25519.PublicKey
	oldLenderOwner           ed25519.PublicKey
	newLenderUser            ed25519.PublicKey
	newLenderOwner           ed25519.PublicKey
	borrowerCollateralWallet ed25519.PublicKey
	sourcePrincipalWallet    ed25519.PublicKey
	oldEscrow                ed25519.PublicKey
	newEscrow                ed25519.PublicKey
	unwrapWallet             ed25519.PublicKey
	programAuthority         ed25519.PublicKey

	pair *lendy.PairAccount
}

// resolveExtend batches the old lender, the new lender and the pair into a
// single read.
func (b *Builder) resolveExtend(ctx context.Context, loan, oldLender, pairAddress ed25519.PublicKey, offer *lendy.OfferAccount, clientLoanId lendy.ClientId) (*extendAccounts, error) {
	var oldLenderAccount, newLenderAccount lendy.UserAccount
	var pair lendy.PairAccount
	if err := b.reader.FetchMany(ctx, []reader.Request{
		{Address: oldLender, Dst: &oldLenderAccount},
		{Address: offer.Lender, Dst: &newLenderAccount},
		{Address: pairAddress, Dst: &pair},
	}); err != nil {
		return nil, err
	}

	res := &extendAccounts{
		oldLenderOwner: oldLenderAccount.Owner,
		newLenderOwner: newLenderAccount.Owner,
		pair:           &pair,
	}

	var err error
	if res.borrowerUser, err = b.UserAddress(); err != nil {
		return nil, err
	}
	if res.newLoan, err = deriveLoanAddress(clientLoanId, res.borrowerUser); err != nil {
		return nil, err
	}
	if res.oldLenderUser, err = userAddress(oldLenderAccount.Owner); err != nil {
		return nil, err
	}
	if res.newLenderUser, err = userAddress(newLenderAccount.Owner); err != nil {
		return nil, err
	}
	if res.borrowerCollateralWallet, err = associatedAddress(b.authority, pair.CollateralMint); err != nil {
		return nil, err
	}
	if res.sourcePrincipalWallet, err = tokenWalletAddress(offer.Lender, pair.PrincipalMint); err != nil {
		return nil, err
	}
	if res.oldEscrow, err = escrowAddress(loan); err != nil {
		return nil, err
	}
	if res.newEscrow, err = escrowAddress(res.newLoan); err != nil {
		return nil, err
	}
	if res.unwrapWallet, err = unwrapWalletAddress(); err != nil {
		return nil, err
	}
	if res.programAuthority, err = programAuthorityAddress(); err != nil {
		return nil, err
	}

	return res, nil
}

// ExtendConstPrincipal refinances loan through offer, keeping the principal
// and topping up or releasing collateral.
func (b *Builder) ExtendConstPrincipal(ctx context.Context, loanAddress, offerAddress ed25519.PublicKey, bulkUuid, clientLoanId lendy.ClientId) (solana.Instruction, error) {
	var offer lendy.OfferAccount
	var loan lendy.LoanAccount
	if err := b.reader.FetchMany(ctx, []reader.Request{
		{Address: offerAddress, Dst: &offer},
		{Address: loanAddress, Dst: &loan},
	}); err != nil {
		return solana.Instruction{}, err
	}

	res, err := b.resolveExtend(ctx, loanAddress, loan.Lender, loan.Pair, &offer, clientLoanId)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeExtendConstPrincipal, lendy.NewExtendConstPrincipalInstruction(
		&lendy.ExtendConstPrincipalInstructionAccounts{
			Loan:                     loanAddress,
			NewLoan:                  res.newLoan,
			Offer:                    offerAddress,
			OldLenderUser:            res.oldLenderUser,
			OldLenderOwner:           res.oldLenderOwner,
			NewLenderUser:            res.newLenderUser,
			NewLenderOwner:           res.newLenderOwner,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			SourcePrincipalWallet:    res.sourcePrincipalWallet,
			OldEscrowWallet:          res.oldEscrow,
			NewEscrowWallet:          res.newEscrow,
			CollateralFeeReceiver:    res.pair.CollateralFeeReceiver,
			PrincipalFeeReceiver:     res.pair.PrincipalFeeReceiver,
			UnwrapWallet:             res.unwrapWallet,
			Pair:                     loan.Pair,
			CollateralMint:           res.pair.CollateralMint,
			ProgramAuthority:         res.programAuthority,
		},
		&lendy.ExtendConstPrincipalInstructionArgs{
			BulkUuid:     bulkUuid,
			ClientLoanId: clientLoanId,
		},
	)), nil
}

// ExtendConstCollateral refinances loan through offer, keeping the collateral.
// The caller supplies the loan's lender and pair so the loan itself is not
// read.
func (b *Builder) ExtendConstCollateral(ctx context.Context, loanAddress, loanLender, loanPair, offerAddress ed25519.PublicKey, bulkUuid, clientLoanId lendy.ClientId) (solana.Instruction, error) {
	offer, err := b.reader.GetOffer(ctx, offerAddress)
	if err != nil {
		return solana.Instruction{}, err
	}

	res, err := b.resolveExtend(ctx, loanAddress, loanLender, loanPair, offer, clientLoanId)
	if err != nil {
		return solana.Instruction{}, err
	}

	borrowerPrincipalWallet, err := associatedAddress(b.authority, res.pair.PrincipalMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	// Native SOL is repaid straight to the old lender's wallet.
	lenderPrincipalWallet := res.oldLenderOwner
	if !res.pair.PrincipalMint.Equal(token.NativeMint) {
		lenderPrincipalWallet, err = associatedAddress(res.oldLenderOwner, res.pair.PrincipalMint)
		if err != nil {
			return solana.Instruction{}, err
		}
	}

	return b.built(lendy.InstructionTypeExtendConstCollateral, lendy.NewExtendConstCollateralInstruction(
		&lendy.ExtendConstCollateralInstructionAccounts{
			Loan:                     loanAddress,
			NewLoan:                  res.newLoan,
			Offer:                    offerAddress,
			OldLenderUser:            res.oldLenderUser,
			OldLenderOwner:           res.oldLenderOwner,
			NewLenderUser:            res.newLenderUser,
			NewLenderOwner:           res.newLenderOwner,
			BorrowerUser:             res.borrowerUser,
			Authority:                b.authority,
			BorrowerCollateralWallet: res.borrowerCollateralWallet,
			BorrowerPrincipalWallet:  borrowerPrincipalWallet,
			LenderPrincipalWallet:    lenderPrincipalWallet,
			SourcePrincipalWallet:    res.sourcePrincipalWallet,
			OldEscrowWallet:          res.oldEscrow,
			NewEscrowWallet:          res.newEscrow,
			CollateralFeeReceiver:    res.pair.CollateralFeeReceiver,
			PrincipalFeeReceiver:     res.pair.PrincipalFeeReceiver,
			UnwrapWallet:             res.unwrapWallet,
			Pair:                     loanPair,
			CollateralMint:           res.pair.CollateralMint,
			ProgramAuthority:         res.programAuthority,
		},
		&lendy.ExtendConstCollateralInstructionArgs{
			BulkUuid:     bulkUuid,
			ClientLoanId: clientLoanId,
		},
	)), nil
}
