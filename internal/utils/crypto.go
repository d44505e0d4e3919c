// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func GenerateRandomString(length int, charset string) (string, error) {
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateOrderNumber returns a human-friendly order reference like ORD-7KQ2M9XA.
func GenerateOrderNumber() (string, error) {
	suffix, err := GenerateRandomString(8, "ABCDEFGHJKLMNPQRSTUVWXYZ23456789")
	if err != nil {
		return "", err
	}
	return "ORD-" + suffix, nil
}
