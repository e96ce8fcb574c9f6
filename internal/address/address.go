// Package address implements canonical EIP-55 mixed-case checksum encoding
// for 20-byte hexadecimal addresses.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HexLength is the number of hex digits in an address, excluding the prefix.
const HexLength = 40

// Validation errors returned by Checksum.
var (
	// ErrLength is returned when an address is not exactly 40 hex digits long.
	ErrLength = errors.New("address must be 40 hex digits")

	// ErrNotHex is returned when an address contains characters outside 0-9, a-f, A-F.
	ErrNotHex = errors.New("address must be a valid hex string")
)

var hexAddress = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]{40}$`)

// IsHex reports whether s is a well-formed hex address, with or without
// the 0x prefix.
func IsHex(s string) bool {
	return hexAddress.MatchString(s)
}

// Normalize lowercases s and ensures a 0x prefix. It does not validate;
// use Checksum for the canonical form.
func Normalize(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return ""
	}

	if !strings.HasPrefix(n, "0x") {
		n = "0x" + n
	}

	return n
}

// Checksum re-encodes s into its canonical EIP-55 mixed-case form. The input
// may carry a 0x prefix and any letter casing; the output always carries the
// prefix. The encoding is deterministic: a hex digit is uppercased when the
// corresponding nibble of keccak256(lowercase hex string) is >= 8. Applying
// Checksum to an already-checksummed address yields the same string.
func Checksum(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "0x")
	trimmed = strings.TrimPrefix(trimmed, "0X")

	if len(trimmed) != HexLength {
		return "", fmt.Errorf("%w: %q has %d", ErrLength, s, len(trimmed))
	}

	lower := strings.ToLower(trimmed)

	if _, err := hex.DecodeString(lower); err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotHex, s)
	}

	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	sum := hash.Sum(nil)

	var b strings.Builder

	b.Grow(2 + HexLength)
	b.WriteString("0x")

	for i := 0; i < HexLength; i++ {
		c := lower[i]

		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}

		if c >= 'a' && c <= 'f' && nibble >= 8 {
			c -= 'a' - 'A'
		}

		b.WriteByte(c)
	}

	return b.String(), nil
}
