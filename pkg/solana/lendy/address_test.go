package lendy

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

func TestGetUserAddress(t *testing.T) {
	owner := fillKey(0x01)

	address, bump, err := GetUserAddress(&GetUserAddressArgs{Owner: owner})
	require.NoError(t, err)

	again, againBump, err := GetUserAddress(&GetUserAddressArgs{Owner: owner})
	require.NoError(t, err)
	assert.Equal(t, address, again)
	assert.Equal(t, bump, againBump)

	expected, err := solana.CreateProgramAddress(PROGRAM_ID, owner, []byte("MONEY_LENDER_USER"), []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, expected, address)

	other, _, err := GetUserAddress(&GetUserAddressArgs{Owner: fillKey(0x02)})
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}

func TestGetLoanAndOfferAddress(t *testing.T) {
	user := fillKey(0x05)
	id := NewClientIdFromString("83ebbdaaf2d24cce")

	loan, loanBump, err := GetLoanAddress(&GetLoanAddressArgs{ClientLoanId: id, BorrowerUser: user})
	require.NoError(t, err)
	expected, err := solana.CreateProgramAddress(PROGRAM_ID, id[:], user, []byte("LOAN"), []byte{loanBump})
	require.NoError(t, err)
	assert.Equal(t, expected, loan)

	offer, offerBump, err := GetOfferAddress(&GetOfferAddressArgs{ClientOfferId: id, LenderUser: user})
	require.NoError(t, err)
	expected, err = solana.CreateProgramAddress(PROGRAM_ID, id[:], user, []byte("OFFER"), []byte{offerBump})
	require.NoError(t, err)
	assert.Equal(t, expected, offer)

	assert.NotEqual(t, loan, offer)

	otherId := id
	otherId[15] ^= 0x01
	otherLoan, _, err := GetLoanAddress(&GetLoanAddressArgs{ClientLoanId: otherId, BorrowerUser: user})
	require.NoError(t, err)
	assert.NotEqual(t, loan, otherLoan)
}

func TestGetWalletAddresses(t *testing.T) {
	user := fillKey(0x07)
	mint := fillKey(0x08)

	wallet, bump, err := GetTokenWalletAddress(&GetTokenWalletAddressArgs{Owner: user, Mint: mint})
	require.NoError(t, err)
	expected, err := solana.CreateProgramAddress(PROGRAM_ID, user, mint, []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, expected, wallet)

	swapped, _, err := GetTokenWalletAddress(&GetTokenWalletAddressArgs{Owner: mint, Mint: user})
	require.NoError(t, err)
	assert.NotEqual(t, wallet, swapped)

	escrow, bump, err := GetEscrowWalletAddress(&GetEscrowWalletAddressArgs{Loan: wallet})
	require.NoError(t, err)
	expected, err = solana.CreateProgramAddress(PROGRAM_ID, wallet, []byte("ESCROW"), []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, expected, escrow)
}

func TestGetSingletonAddresses(t *testing.T) {
	authority, bump, err := GetProgramAuthorityAddress()
	require.NoError(t, err)
	expected, err := solana.CreateProgramAddress(PROGRAM_ID, []byte("AUTHORITY"), []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, expected, authority)

	unwrap, bump, err := GetUnwrapWalletAddress()
	require.NoError(t, err)
	expected, err = solana.CreateProgramAddress(PROGRAM_ID, []byte("UNWRAP"), []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, expected, unwrap)

	assert.NotEqual(t, authority, unwrap)
}

func TestKnownAddresses(t *testing.T) {
	decode := func(s string) ed25519.PublicKey {
		b, err := base58.Decode(s)
		require.NoError(t, err)
		return b
	}

	owner := decode("4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM")

	user, bump, err := GetUserAddress(&GetUserAddressArgs{Owner: owner})
	require.NoError(t, err)
	assert.Equal(t, "C7D92LhxQi4pGXTUCbDnQFdYGhB5GmK9cF4zT3eTCgxJ", base58.Encode(user))
	assert.EqualValues(t, 255, bump)

	for _, tc := range []struct {
		loan   string
		escrow string
		bump   uint8
	}{
		{"8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh", "35SRazwkfR7kzLFVNPayzAU8X4citZp19yjcdLkdiM6d", 255},
		// First five candidates land on the curve.
		{"C7D92LhxQi4pGXTUCbDnQFdYGhB5GmK9cF4zT3eTCgxJ", "6dCC2QprtWM2nz2eKYskH61THX4Vk4fSdnUmU48wHXoB", 250},
	} {
		escrow, bump, err := GetEscrowWalletAddress(&GetEscrowWalletAddressArgs{Loan: decode(tc.loan)})
		require.NoError(t, err)
		assert.Equal(t, tc.escrow, base58.Encode(escrow), tc.loan)
		assert.Equal(t, tc.bump, bump, tc.loan)
	}

	authority, bump, err := GetProgramAuthorityAddress()
	require.NoError(t, err)
	assert.Equal(t, "5ypQLrVWvqhqWm4PpQ1ZaT4qQrBB7A6RZVdJ92EupG8Q", base58.Encode(authority))
	assert.EqualValues(t, 255, bump)
}
