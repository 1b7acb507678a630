// Package shortvec implements the compact-u16 length prefix used throughout
// the Solana wire format.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const maxEncodedBytes = 3

// EncodeLen encodes the specified length into the writer, returning the
// number of bytes written.
//
// Lengths above math.MaxUint16 are rejected.
func EncodeLen(w io.Writer, length int) (int, error) {
	if length < 0 || length > math.MaxUint16 {
		return 0, errors.Errorf("len %d out of range [0, %d]", length, math.MaxUint16)
	}

	var encoded [maxEncodedBytes]byte
	n := 0
	for {
		encoded[n] = byte(length & 0x7f)
		length >>= 7
		if length == 0 {
			n++
			break
		}

		encoded[n] |= 0x80
		n++
	}

	return w.Write(encoded[:n])
}

// DecodeLen decodes a shortvec encoded length from the reader.
func DecodeLen(r io.Reader) (int, error) {
	var val int
	var b [1]byte

	for i := 0; ; i++ {
		if i == maxEncodedBytes {
			return 0, errors.Errorf("invalid size: more than %d bytes", maxEncodedBytes)
		}

		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}

		val |= int(b[0]&0x7f) << (i * 7)
		if b[0]&0x80 == 0 {
			break
		}
	}

	if val > math.MaxUint16 {
		return 0, errors.Errorf("decoded len %d exceeds %d", val, math.MaxUint16)
	}

	return val, nil
}
