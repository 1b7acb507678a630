package main

import (
	"bytes"
	"fmt"

	"github.com/lendy-labs/lendy-go/pkg/solana"
	compute_budget "github.com/lendy-labs/lendy-go/pkg/solana/computebudget"
	"github.com/lendy-labs/lendy-go/pkg/solana/lendy"
	"github.com/lendy-labs/lendy-go/pkg/solana/token"
)

// describe renders the compiled instruction at index for --dry-run output.
func describe(m solana.Message, index int) string {
	ixn := m.Instructions[index]
	program := m.Accounts[ixn.ProgramIndex]

	switch {
	case bytes.Equal(program, lendy.PROGRAM_ID):
		return describeLendy(ixn.Data)
	case bytes.Equal(program, token.AssociatedTokenAccountProgramKey):
		ata, err := token.DecompileCreateAssociatedAccount(m, index)
		if err != nil {
			return fmt.Sprintf("CreateAssociatedTokenAccount (invalid: %s)", err)
		}
		return fmt.Sprintf("CreateAssociatedTokenAccountIdempotent {Address:%s Owner:%s Mint:%s}",
			keyString(ata.Address), keyString(ata.Owner), keyString(ata.Mint))
	case bytes.Equal(program, compute_budget.ProgramKey):
		if limit, err := compute_budget.ParseSetComputeUnitLimitIxnData(ixn.Data); err == nil {
			return fmt.Sprintf("SetComputeUnitLimit %d", limit)
		}
		if price, err := compute_budget.ParseSetComputeUnitPriceIxnData(ixn.Data); err == nil {
			return fmt.Sprintf("SetComputeUnitPrice %d", price)
		}
		return "ComputeBudget"
	default:
		return keyString(program)
	}
}

func describeLendy(data []byte) string {
	if len(data) == 0 {
		return "Lendy (empty)"
	}

	instruction := lendy.InstructionType(data[0])
	args, err := decodeArgs(instruction, data)
	if err != nil {
		return fmt.Sprintf("%s (invalid: %s)", instruction, err)
	}
	if len(args) == 0 {
		return instruction.String()
	}
	return fmt.Sprintf("%s %s", instruction, args)
}

// decodeArgs renders the parameters of instructions that carry any.
func decodeArgs(instruction lendy.InstructionType, data []byte) (string, error) {
	switch instruction {
	case lendy.InstructionTypeCreateUser:
		return format(lendy.DecodeCreateUserInstructionArgs(data))
	case lendy.InstructionTypeMakeOffer:
		return format(lendy.DecodeMakeOfferInstructionArgs(data))
	case lendy.InstructionTypeBorrow:
		return format(lendy.DecodeBorrowInstructionArgs(data))
	case lendy.InstructionTypeDepositToken:
		return format(lendy.DecodeDepositTokenInstructionArgs(data))
	case lendy.InstructionTypeWithdrawToken:
		return format(lendy.DecodeWithdrawTokenInstructionArgs(data))
	case lendy.InstructionTypeSetLtvRange:
		return format(lendy.DecodeSetLtvRangeInstructionArgs(data))
	case lendy.InstructionTypeExtendConstPrincipal:
		return format(lendy.DecodeExtendConstPrincipalInstructionArgs(data))
	case lendy.InstructionTypeExtendConstCollateral:
		return format(lendy.DecodeExtendConstCollateralInstructionArgs(data))
	case lendy.InstructionTypeSplitLoanByPrincipal:
		return format(lendy.DecodeSplitLoanByPrincipalInstructionArgs(data))
	case lendy.InstructionTypeSplitLoanByCollateral:
		return format(lendy.DecodeSplitLoanByCollateralInstructionArgs(data))
	default:
		return "", nil
	}
}

func format[T any](args *T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%+v", *args), nil
}
