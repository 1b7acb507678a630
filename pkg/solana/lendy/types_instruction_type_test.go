package lendy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionType_Stability(t *testing.T) {
	expected := map[InstructionType]uint8{
		InstructionTypeCreatePair:            0,
		InstructionTypeAlterPair:             1,
		InstructionTypeClosePair:             2,
		InstructionTypeCreateUser:            3,
		InstructionTypeAlterUser:             4,
		InstructionTypeSetupTokenWallet:      5,
		InstructionTypeDepositToken:          6,
		InstructionTypeWithdrawToken:         7,
		InstructionTypeMakeOffer:             8,
		InstructionTypeCancelOffer:           9,
		InstructionTypeBorrow:                10,
		InstructionTypeRepay:                 11,
		InstructionTypeClaim:                 12,
		InstructionTypeExtendConstPrincipal:  13,
		InstructionTypeRepaySol:              14,
		InstructionTypeVersion:               15,
		InstructionTypeExtendConstCollateral: 16,
		InstructionTypeSplitLoanByPrincipal:  17,
		InstructionTypeSetLtvRange:           18,
		InstructionTypeMoveOffer:             19,
		InstructionTypeRepay2:                20,
		InstructionTypeRepaySol2:             21,
		InstructionTypeSplitLoanByCollateral: 22,
	}

	assert.Len(t, instructionTypeNames, len(expected))
	for instruction, value := range expected {
		assert.Equal(t, value, uint8(instruction), instruction.String())
	}
}

func TestInstructionType_String(t *testing.T) {
	assert.Equal(t, "Borrow", InstructionTypeBorrow.String())
	assert.Equal(t, "InstructionType(200)", InstructionType(200).String())
}
