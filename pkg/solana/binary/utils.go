// Package binary holds cursor style helpers for fixed-width little-endian
// account and instruction layouts. Every helper reads or writes at
// buf[*offset:] and advances offset by the width of the field.
package binary

import (
	"crypto/ed25519"
	"encoding/binary"
)

func PutKey32(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:*offset+ed25519.PublicKeySize], src)
	*offset += ed25519.PublicKeySize
}

func PutBytes(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:*offset+len(src)], src)
	*offset += len(src)
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func PutUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

// Skip advances offset over n bytes of padding. Freshly allocated buffers
// are already zero, so nothing is written.
func Skip(n int, offset *int) {
	*offset += n
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:*offset+ed25519.PublicKeySize])
	*offset += ed25519.PublicKeySize
}

// GetBytes copies len(dst) bytes into dst.
func GetBytes(src []byte, dst []byte, offset *int) {
	copy(dst, src[*offset:*offset+len(dst)])
	*offset += len(dst)
}

func GetUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func GetUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func GetUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
}

func GetUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}
