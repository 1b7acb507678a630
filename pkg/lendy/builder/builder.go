// Package builder resolves the accounts of Lendy operations and builds their
// instructions on behalf of a single authority.
package builder

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lendy-labs/lendy-go/pkg/lendy/reader"
	"github.com/lendy-labs/lendy-go/pkg/solana"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
)

// Builder is stateless apart from the authority it signs for, and is safe
// for concurrent use.
type Builder struct {
	log       *logrus.Entry
	reader    *reader.Reader
	authority ed25519.PublicKey
}

func New(r *reader.Reader, authority ed25519.PublicKey) *Builder {
	return &Builder{
		log:       logrus.StandardLogger().WithField("type", "lendy/builder"),
		reader:    r,
		authority: authority,
	}
}

func (b *Builder) Authority() ed25519.PublicKey {
	return b.authority
}

// UserAddress is the User account owned by the builder's authority.
func (b *Builder) UserAddress() (ed25519.PublicKey, error) {
	return userAddress(b.authority)
}

// CreateUser registers owner's User account. A nil owner defaults to the
// builder's authority.
func (b *Builder) CreateUser(nick string, owner ed25519.PublicKey) (solana.Instruction, error) {
	if owner == nil {
		owner = b.authority
	}

	encodedNick, err := lendy.NewNick(nick)
	if err != nil {
		return solana.Instruction{}, err
	}

	user, err := userAddress(owner)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeCreateUser, lendy.NewCreateUserInstruction(
		&lendy.CreateUserInstructionAccounts{
			User:  user,
			Owner: owner,
		},
		&lendy.CreateUserInstructionArgs{
			Nick: encodedNick,
		},
	)), nil
}

func (b *Builder) MakeOffer(pair ed25519.PublicKey, principal, collateral uint64, clientOfferId lendy.ClientId) (solana.Instruction, error) {
	lenderUser, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	offer, _, err := lendy.GetOfferAddress(&lendy.GetOfferAddressArgs{
		ClientOfferId: clientOfferId,
		LenderUser:    lenderUser,
	})
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive offer address")
	}

	return b.built(lendy.InstructionTypeMakeOffer, lendy.NewMakeOfferInstruction(
		&lendy.MakeOfferInstructionAccounts{
			Offer:      offer,
			LenderUser: lenderUser,
			Authority:  b.authority,
			Pair:       pair,
		},
		&lendy.MakeOfferInstructionArgs{
			ClientOfferId: clientOfferId,
			Principal:     principal,
			Collateral:    collateral,
		},
	)), nil
}

func (b *Builder) CancelOffer(offer ed25519.PublicKey) (solana.Instruction, error) {
	lenderUser, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeCancelOffer, lendy.NewCancelOfferInstruction(
		&lendy.CancelOfferInstructionAccounts{
			Offer:      offer,
			LenderUser: lenderUser,
			Authority:  b.authority,
		},
	)), nil
}

func (b *Builder) SetLtvRange(offer, pair ed25519.PublicKey, minLtvBps, maxLtvBps uint16) (solana.Instruction, error) {
	lenderUser, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeSetLtvRange, lendy.NewSetLtvRangeInstruction(
		&lendy.SetLtvRangeInstructionAccounts{
			Offer:      offer,
			LenderUser: lenderUser,
			Authority:  b.authority,
			Pair:       pair,
		},
		&lendy.SetLtvRangeInstructionArgs{
			MinLtvBps: minLtvBps,
			MaxLtvBps: maxLtvBps,
		},
	)), nil
}

// Borrow takes principal from offer. The offer is read first, then the
// lender's User account and the pair in one batch.
func (b *Builder) Borrow(ctx context.Context, offerAddress ed25519.PublicKey, principal uint64, bulkUuid, clientLoanId lendy.ClientId) (solana.Instruction, error) {
	borrowerUser, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	offer, err := b.reader.GetOffer(ctx, offerAddress)
	if err != nil {
		return solana.Instruction{}, err
	}

	var lender lendy.UserAccount
	var pair lendy.PairAccount
	if err := b.reader.FetchMany(ctx, []reader.Request{
		{Address: offer.Lender, Dst: &lender},
		{Address: offer.Pair, Dst: &pair},
	}); err != nil {
		return solana.Instruction{}, err
	}

	loan, err := deriveLoanAddress(clientLoanId, borrowerUser)
	if err != nil {
		return solana.Instruction{}, err
	}

	lenderUser, err := userAddress(lender.Owner)
	if err != nil {
		return solana.Instruction{}, err
	}

	sourcePrincipalWallet, err := tokenWalletAddress(offer.Lender, pair.PrincipalMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	escrow, err := escrowAddress(loan)
	if err != nil {
		return solana.Instruction{}, err
	}

	programAuthority, err := programAuthorityAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	borrowerCollateralWallet, err := associatedAddress(b.authority, pair.CollateralMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	borrowerPrincipalWallet, err := associatedAddress(b.authority, pair.PrincipalMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeBorrow, lendy.NewBorrowInstruction(
		&lendy.BorrowInstructionAccounts{
			Offer:                    offerAddress,
			Loan:                     loan,
			LenderUser:               lenderUser,
			LenderOwner:              lender.Owner,
			BorrowerUser:             borrowerUser,
			Authority:                b.authority,
			BorrowerCollateralWallet: borrowerCollateralWallet,
			BorrowerPrincipalWallet:  borrowerPrincipalWallet,
			SourcePrincipalWallet:    sourcePrincipalWallet,
			EscrowWallet:             escrow,
			CollateralFeeReceiver:    pair.CollateralFeeReceiver,
			Pair:                     offer.Pair,
			CollateralMint:           pair.CollateralMint,
			ProgramAuthority:         programAuthority,
		},
		&lendy.BorrowInstructionArgs{
			Principal:    principal,
			BulkUuid:     bulkUuid,
			ClientLoanId: clientLoanId,
		},
	)), nil
}

// Claim collects the collateral of a defaulted loan into the authority's
// associated token account.
func (b *Builder) Claim(ctx context.Context, loanAddress ed25519.PublicKey) (solana.Instruction, error) {
	loan, err := b.reader.GetLoan(ctx, loanAddress)
	if err != nil {
		return solana.Instruction{}, err
	}

	var borrower lendy.UserAccount
	var pair lendy.PairAccount
	if err := b.reader.FetchMany(ctx, []reader.Request{
		{Address: loan.Borrower, Dst: &borrower},
		{Address: loan.Pair, Dst: &pair},
	}); err != nil {
		return solana.Instruction{}, err
	}

	lenderUser, err := b.UserAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	escrow, err := escrowAddress(loanAddress)
	if err != nil {
		return solana.Instruction{}, err
	}

	programAuthority, err := programAuthorityAddress()
	if err != nil {
		return solana.Instruction{}, err
	}

	lenderCollateralWallet, err := associatedAddress(b.authority, pair.CollateralMint)
	if err != nil {
		return solana.Instruction{}, err
	}

	return b.built(lendy.InstructionTypeClaim, lendy.NewClaimInstruction(
		&lendy.ClaimInstructionAccounts{
			Loan:                   loanAddress,
			LenderUser:             lenderUser,
			BorrowerUser:           loan.Borrower,
			BorrowerOwner:          borrower.Owner,
			Authority:              b.authority,
			LenderCollateralWallet: lenderCollateralWallet,
			EscrowWallet:           escrow,
			ProgramAuthority:       programAuthority,
		},
	)), nil
}

func (b *Builder) built(instruction lendy.InstructionType, ixn solana.Instruction) solana.Instruction {
	b.log.WithFields(logrus.Fields{
		"instruction": instruction.String(),
		"accounts":    ixn.AccountKeys(),
	}).Debug("built instruction")
	return ixn
}
