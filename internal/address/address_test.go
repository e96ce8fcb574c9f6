package address

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference vectors from the EIP-55 specification.
var checksumVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	"0x52908400098527886E0F7030069857D2E4169EE7",
	"0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	"0xde709f2102306220921060314715629080e2fb77",
	"0x27b1fdb04752bbc536007a920d24acb045561c26",
}

func TestChecksum_Vectors(t *testing.T) {
	for _, want := range checksumVectors {
		got, err := Checksum(strings.ToLower(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = Checksum("0x" + strings.ToUpper(want[2:]))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestChecksum_Idempotent(t *testing.T) {
	for _, want := range checksumVectors {
		got, err := Checksum(want)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestChecksum_NoPrefix(t *testing.T) {
	got, err := Checksum("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)
}

func TestChecksum_UppercasePrefix(t *testing.T) {
	got, err := Checksum("0X5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)
}

func TestChecksum_BadLength(t *testing.T) {
	_, err := Checksum("0x1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLength)

	_, err = Checksum("")
	assert.ErrorIs(t, err, ErrLength)
}

func TestChecksum_NotHex(t *testing.T) {
	_, err := Checksum("0xzz34567890abcdef1234567890abcdef12345678")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotHex)
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.True(t, IsHex("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.False(t, IsHex("0x1234"))
	assert.False(t, IsHex("0xzz34567890abcdef1234567890abcdef12345678"))
	assert.False(t, IsHex(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		Normalize(" 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed "))
	assert.Equal(t, "0xabcd", Normalize("ABCD"))
	assert.Equal(t, "", Normalize("  "))
}
