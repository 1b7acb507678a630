package lendy

import "fmt"

// InstructionType is the leading byte of every Lendy instruction. The values
// are shared with the on-chain program: new entries are appended, existing
// ones are never renumbered.
type InstructionType uint8

const (
	InstructionTypeCreatePair InstructionType = iota
	InstructionTypeAlterPair
	InstructionTypeClosePair
	InstructionTypeCreateUser
	InstructionTypeAlterUser
	InstructionTypeSetupTokenWallet
	InstructionTypeDepositToken
	InstructionTypeWithdrawToken
	InstructionTypeMakeOffer
	InstructionTypeCancelOffer
	InstructionTypeBorrow
	InstructionTypeRepay
	InstructionTypeClaim
	InstructionTypeExtendConstPrincipal
	InstructionTypeRepaySol
	InstructionTypeVersion
	InstructionTypeExtendConstCollateral
	InstructionTypeSplitLoanByPrincipal
	InstructionTypeSetLtvRange
	InstructionTypeMoveOffer
	InstructionTypeRepay2
	InstructionTypeRepaySol2
	InstructionTypeSplitLoanByCollateral
)

var instructionTypeNames = map[InstructionType]string{
	InstructionTypeCreatePair:            "CreatePair",
	InstructionTypeAlterPair:             "AlterPair",
	InstructionTypeClosePair:             "ClosePair",
	InstructionTypeCreateUser:            "CreateUser",
	InstructionTypeAlterUser:             "AlterUser",
	InstructionTypeSetupTokenWallet:      "SetupTokenWallet",
	InstructionTypeDepositToken:          "DepositToken",
	InstructionTypeWithdrawToken:         "WithdrawToken",
	InstructionTypeMakeOffer:             "MakeOffer",
	InstructionTypeCancelOffer:           "CancelOffer",
	InstructionTypeBorrow:                "Borrow",
	InstructionTypeRepay:                 "Repay",
	InstructionTypeClaim:                 "Claim",
	InstructionTypeExtendConstPrincipal:  "ExtendConstPrincipal",
	InstructionTypeRepaySol:              "RepaySol",
	InstructionTypeVersion:               "Version",
	InstructionTypeExtendConstCollateral: "ExtendConstCollateral",
	InstructionTypeSplitLoanByPrincipal:  "SplitLoanByPrincipal",
	InstructionTypeSetLtvRange:           "SetLtvRange",
	InstructionTypeMoveOffer:             "MoveOffer",
	InstructionTypeRepay2:                "Repay2",
	InstructionTypeRepaySol2:             "RepaySol2",
	InstructionTypeSplitLoanByCollateral: "SplitLoanByCollateral",
}

func (t InstructionType) String() string {
	if name, ok := instructionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("InstructionType(%d)", uint8(t))
}

func putInstructionType(dst []byte, v InstructionType, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}
