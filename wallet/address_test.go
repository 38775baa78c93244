package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Checksummed forms taken from the EIP-55 reference vectors.
const (
	checksummed1 = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	checksummed2 = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		addr  string
		valid bool
	}{
		{"checksummed", checksummed1, true},
		{"all lowercase", strings.ToLower(checksummed1), true},
		{"all uppercase hex", "0x" + strings.ToUpper(checksummed1[2:]), true},
		{"bad checksum", "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"too short", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe", false},
		{"missing prefix", checksummed1[2:], false},
		{"non-hex characters", "0xZZZeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"ens name", "alice.eth", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.addr))
		})
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, checksummed1, Checksum(strings.ToLower(checksummed1)))
	assert.Equal(t, checksummed2, Checksum(strings.ToLower(checksummed2)))

	// Already-checksummed input is a fixed point.
	assert.Equal(t, checksummed1, Checksum(checksummed1))

	assert.Equal(t, "", Checksum("not-an-address"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, checksummed1, Normalize(strings.ToLower(checksummed1)))
	assert.Equal(t, "", Normalize("0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed"), "bad checksum must not normalize")
}
