package compute_budget

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramKey(t *testing.T) {
	assert.Equal(t, "ComputeBudget111111111111111111111111111111", base58.Encode(ProgramKey))
}

func TestSetComputeUnitLimit(t *testing.T) {
	ixn := SetComputeUnitLimit(1_000_000)

	assert.EqualValues(t, ProgramKey, ixn.Program)
	assert.Empty(t, ixn.Accounts)
	assert.Equal(t, []byte{2, 0x40, 0x42, 0x0f, 0x00}, ixn.Data)

	limit, err := ParseSetComputeUnitLimitIxnData(ixn.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000_000, limit)

	_, err = ParseSetComputeUnitLimitIxnData(SetComputeUnitPrice(1).Data)
	assert.ErrorIs(t, err, ErrInvalidInstructionData)
}

func TestSetComputeUnitPrice(t *testing.T) {
	ixn := SetComputeUnitPrice(5_000)
	assert.Len(t, ixn.Data, 9)
	assert.EqualValues(t, 3, ixn.Data[0])

	price, err := ParseSetComputeUnitPriceIxnData(ixn.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 5_000, price)

	_, err = ParseSetComputeUnitPriceIxnData([]byte{3})
	assert.ErrorIs(t, err, ErrInvalidInstructionData)
}
