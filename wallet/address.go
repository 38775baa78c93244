// Package wallet validates and normalizes Ethereum-style account addresses.
// The service never manages wallet connection state; it only checks that the
// identifiers it is handed are syntactically well formed.
package wallet

import (
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValid reports whether addr is a well-formed 20-byte hex address. Mixed
// case input must additionally carry a correct EIP-55 checksum; all-lowercase
// and all-uppercase forms are accepted without one.
func IsValid(addr string) bool {
	if !addressPattern.MatchString(addr) {
		return false
	}
	hexPart := addr[2:]
	lower := strings.ToLower(hexPart)
	if hexPart == lower || hexPart == strings.ToUpper(hexPart) {
		return true
	}
	return Checksum(addr) == addr
}

// Checksum returns the EIP-55 mixed-case form of addr. The input must match
// the basic address pattern; the result is "" otherwise.
func Checksum(addr string) string {
	if !addressPattern.MatchString(addr) {
		return ""
	}
	lower := strings.ToLower(addr[2:])

	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	digest := hex.EncodeToString(hash.Sum(nil))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			c = c - 'a' + 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

// Normalize returns the checksummed form of a valid address, or "" if addr
// is not valid.
func Normalize(addr string) string {
	if !IsValid(addr) {
		return ""
	}
	return Checksum(addr)
}
