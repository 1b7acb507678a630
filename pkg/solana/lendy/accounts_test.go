package lendy

import (
	"bytes"
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSizes(t *testing.T) {
	assert.Equal(t, 88, UserPairStatsSize)
	assert.Equal(t, 3208, UserAccountSize)
	assert.Equal(t, 256, OfferAccountSize)
	assert.Equal(t, 1089, LoanAccountSize)
	assert.Equal(t, 316, PairAccountSize)
}

func TestUserAccount_RoundTrip(t *testing.T) {
	owner := fillKey(0x11)

	expected := &UserAccount{
		Discriminator:  [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		Version:        2,
		Bump:           254,
		Owner:          owner,
		NextOfferSeqNo: 7,
		NextLoanSeqNo:  math.MaxUint64,
	}
	copy(expected.Nick[:], "alice")
	for i := range expected.Stats {
		expected.Stats[i] = UserPairStats{
			Pair:             fillKey(byte(i)),
			Offered:          uint64(i),
			Borrowed:         uint64(2 * i),
			AllTimeClaimed:   uint64(3 * i),
			AllTimeEarned:    uint64(4 * i),
			Owed:             uint64(5 * i),
			AllTimeRepaid:    uint64(6 * i),
			AllTimeDefaulted: math.MaxUint64 - uint64(i),
		}
	}

	data := expected.Marshal()
	require.Len(t, data, UserAccountSize)
	assert.Equal(t, make([]byte, 320), data[UserAccountSize-320:])

	var actual UserAccount
	require.NoError(t, actual.Unmarshal(data))
	assert.Equal(t, expected, &actual)
	assert.Equal(t, "alice", actual.Nick.String())

	stats, ok := actual.PairStats(fillKey(3))
	require.True(t, ok)
	assert.EqualValues(t, 15, stats.Owed)

	_, ok = actual.PairStats(fillKey(0xee))
	assert.False(t, ok)
}

func TestOfferAccount_RoundTrip(t *testing.T) {
	for _, expected := range []*OfferAccount{
		{
			Pair:   fillKey(0),
			Lender: fillKey(0),
		},
		{
			Discriminator:       [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Version:             math.MaxUint8,
			Pair:                fillKey(0xff),
			ClientOfferId:       NewClientIdFromString("83ebbdaaf2d24cce"),
			Principal:           math.MaxUint64,
			Collateral:          math.MaxUint64,
			RemainingPrincipal:  math.MaxUint64,
			RemainingCollateral: math.MaxUint64,
			Lender:              fillKey(0xff),
		},
		{
			Version:             1,
			Pair:                fillKey(0x22),
			ClientOfferId:       NewClientIdFromString("offer"),
			Principal:           49_400_000_000,
			Collateral:          1_000_000_000,
			RemainingPrincipal:  49_400_000_000,
			RemainingCollateral: 1_000_000_000,
			Lender:              fillKey(0x33),
		},
	} {
		data := expected.Marshal()
		require.Len(t, data, OfferAccountSize)

		var actual OfferAccount
		require.NoError(t, actual.Unmarshal(data))
		assert.Equal(t, expected, &actual)
	}
}

func TestLoanAccount_RoundTrip(t *testing.T) {
	for _, expected := range []*LoanAccount{
		{
			Pair:     fillKey(0),
			Lender:   fillKey(0),
			Borrower: fillKey(0),
		},
		{
			Discriminator: [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Version:       math.MaxUint8,
			BulkUuid:      NewClientIdFromString("ffffffffffffffff"),
			ClientLoanId:  NewClientIdFromString("ffffffffffffffff"),
			Pair:          fillKey(0xff),
			AprBps:        math.MaxUint32,
			Principal:     math.MaxUint64,
			Collateral:    math.MaxUint64,
			DurationSec:   math.MaxUint64,
			Lender:        fillKey(0xff),
			StartTime:     math.MaxUint64,
			EndTime:       math.MaxUint64,
			Borrower:      fillKey(0xff),
			Status:        math.MaxUint8,
		},
	} {
		data := expected.Marshal()
		require.Len(t, data, LoanAccountSize)

		var actual LoanAccount
		require.NoError(t, actual.Unmarshal(data))
		assert.Equal(t, expected, &actual)
	}
}

func TestPairAccount_RoundTrip(t *testing.T) {
	for _, expected := range []*PairAccount{
		{
			PrincipalMint:         fillKey(0),
			CollateralMint:        fillKey(0),
			CollateralFeeReceiver: fillKey(0),
			PrincipalFeeReceiver:  fillKey(0),
		},
		{
			Discriminator:         [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Version:               math.MaxUint8,
			Enabled:               math.MaxUint8,
			Symbol:                NewSymbol("SOL/USDC"),
			AprBps:                math.MaxUint32,
			FeeRateBps:            math.MaxUint32,
			DurationSec:           math.MaxUint64,
			PrincipalMint:         fillKey(0xff),
			CollateralMint:        fillKey(0xfe),
			CollateralFeeReceiver: fillKey(0xfd),
			MinOfferPrincipal:     math.MaxUint64,
			PrincipalFeeReceiver:  fillKey(0xfc),
			MinAutoLtvRangeBps:    math.MaxUint16,
			OffersMgmtFeeRateBps:  math.MaxUint16,
		},
	} {
		data := expected.Marshal()
		require.Len(t, data, PairAccountSize)

		var actual PairAccount
		require.NoError(t, actual.Unmarshal(data))
		assert.Equal(t, expected, &actual)
	}

	pair := &PairAccount{Enabled: 1, Symbol: NewSymbol("SOL/USDC")}
	assert.True(t, pair.IsEnabled())
	assert.Equal(t, "SOL/USDC", pair.Symbol.String())
}

func TestAccounts_LayoutMismatch(t *testing.T) {
	for _, tc := range []struct {
		name    string
		size    int
		account Account
	}{
		{"User", UserAccountSize, &UserAccount{}},
		{"UserPairStats", UserPairStatsSize, &UserPairStats{}},
		{"Offer", OfferAccountSize, &OfferAccount{}},
		{"Loan", LoanAccountSize, &LoanAccount{}},
		{"Pair", PairAccountSize, &PairAccount{}},
	} {
		for _, size := range []int{0, tc.size - 1, tc.size + 1} {
			err := tc.account.Unmarshal(make([]byte, size))
			assert.True(t, errors.Is(err, ErrLayoutMismatch), "%s with %d bytes", tc.name, size)
			assert.Contains(t, err.Error(), tc.name)
		}

		assert.NoError(t, tc.account.Unmarshal(make([]byte, tc.size)))
	}
}

func TestAccounts_PaddingIgnored(t *testing.T) {
	// Every bit set, including padding. Fields decode to their max values
	// and padding is zeroed again on encode.
	raw := bytes.Repeat([]byte{0xff}, OfferAccountSize)

	var offer OfferAccount
	require.NoError(t, offer.Unmarshal(raw))
	assert.EqualValues(t, uint64(math.MaxUint64), offer.Principal)
	assert.EqualValues(t, uint64(math.MaxUint64), offer.RemainingCollateral)
	assert.Equal(t, fillKey(0xff), offer.Lender)

	encoded := offer.Marshal()
	assert.Equal(t, make([]byte, 7), encoded[9:16])
	assert.Equal(t, make([]byte, 128), encoded[OfferAccountSize-128:])
	assert.Equal(t, raw[:9], encoded[:9])
	assert.Equal(t, raw[16:OfferAccountSize-128], encoded[16:OfferAccountSize-128])

	raw = bytes.Repeat([]byte{0xff}, LoanAccountSize)
	var loan LoanAccount
	require.NoError(t, loan.Unmarshal(raw))
	assert.EqualValues(t, math.MaxUint8, loan.Status)
	assert.EqualValues(t, uint32(math.MaxUint32), loan.AprBps)

	encoded = loan.Marshal()
	assert.Equal(t, make([]byte, 4), encoded[48:52])
	assert.Equal(t, make([]byte, 896), encoded[LoanAccountSize-896:])
}

func TestAccounts_FieldOffsets(t *testing.T) {
	offer := &OfferAccount{
		Pair:      fillKey(0xaa),
		Principal: 0x0102030405060708,
		Lender:    fillKey(0xbb),
	}
	data := offer.Marshal()
	assert.Equal(t, []byte(fillKey(0xaa)), data[16:48])
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, data[64:72])
	assert.Equal(t, []byte(fillKey(0xbb)), data[96:128])

	pair := &PairAccount{
		PrincipalMint:        fillKey(0x01),
		PrincipalFeeReceiver: fillKey(0x02),
		MinAutoLtvRangeBps:   0x0a0b,
	}
	data = pair.Marshal()
	assert.Equal(t, []byte(fillKey(0x01)), data[48:80])
	assert.Equal(t, []byte(fillKey(0x02)), data[152:184])
	assert.Equal(t, []byte{0x0b, 0x0a}, data[184:186])
}

func TestNewNick(t *testing.T) {
	nick, err := NewNick("")
	require.NoError(t, err)
	assert.Equal(t, Nick{}, nick)

	nick, err = NewNick("fourteen_bytes")
	require.NoError(t, err)
	assert.Equal(t, "fourteen_bytes", nick.String())

	_, err = NewNick("fifteen_bytes__")
	assert.True(t, errors.Is(err, ErrNickTooLong))
}

func fillKey(b byte) ed25519.PublicKey {
	return bytes.Repeat([]byte{b}, ed25519.PublicKeySize)
}
