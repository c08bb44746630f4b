package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns a 6-digit one-time code.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failure is unrecoverable for auth purposes
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
