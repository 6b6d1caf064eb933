package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// codeAlphabet omits look-alike characters.
const codeAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// RandomCode returns n random characters from codeAlphabet (6 when n <= 0).
func RandomCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	limit := big.NewInt(int64(len(codeAlphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for sb.Len() < n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[idx.Int64()])
	}
	return sb.String(), nil
}
