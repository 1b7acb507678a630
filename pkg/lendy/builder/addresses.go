package builder

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

func userAddress(owner ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, _, err := lendy.GetUserAddress(&lendy.GetUserAddressArgs{
		Owner: owner,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive user address")
	}
	return address, nil
}

func deriveLoanAddress(clientLoanId lendy.ClientId, borrowerUser ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, _, err := lendy.GetLoanAddress(&lendy.GetLoanAddressArgs{
		ClientLoanId: clientLoanId,
		BorrowerUser: borrowerUser,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive loan address")
	}
	return address, nil
}

func tokenWalletAddress(user, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, _, err := lendy.GetTokenWalletAddress(&lendy.GetTokenWalletAddressArgs{
		Owner: user,
		Mint:  mint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive token wallet address")
	}
	return address, nil
}

func escrowAddress(loan ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, _, err := lendy.GetEscrowWalletAddress(&lendy.GetEscrowWalletAddressArgs{
		Loan: loan,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive escrow address")
	}
	return address, nil
}

func programAuthorityAddress() (ed25519.PublicKey, error) {
	address, _, err := lendy.GetProgramAuthorityAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive program authority address")
	}
	return address, nil
}

func unwrapWalletAddress() (ed25519.PublicKey, error) {
	address, _, err := lendy.GetUnwrapWalletAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive unwrap wallet address")
	}
	return address, nil
}

func associatedAddress(owner, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	address, err := token.GetAssociatedAccount(owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive associated token address")
	}
	return address, nil
}
