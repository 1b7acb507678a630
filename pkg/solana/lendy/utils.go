package lendy

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

func checkLayoutSize(schema string, data []byte, expected int) error {
	if len(data) != expected {
		return errors.Wrapf(ErrLayoutMismatch, "%s: expected %d bytes, got %d", schema, expected, len(data))
	}
	return nil
}

func checkInstructionData(data []byte, instruction InstructionType, argsSize int) error {
	if len(data) != 1+argsSize {
		return errors.Wrapf(ErrInvalidInstructionData, "%s: expected %d bytes, got %d", instruction, 1+argsSize, len(data))
	}
	if InstructionType(data[0]) != instruction {
		return errors.Wrapf(ErrInvalidInstructionData, "expected %s, got %s", instruction, InstructionType(data[0]))
	}
	return nil
}

func trimFixed(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

func encodeKey(key ed25519.PublicKey) string {
	if len(key) == 0 {
		return "<nil>"
	}
	return base58.Encode(key)
}
