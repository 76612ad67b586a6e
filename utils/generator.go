package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const txnSuffixLength = 9
const base36Bytes = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateTransactionID builds ids of the form TXN-<millis>-<9 base36 chars>.
// Collisions are treated as negligible, not eliminated.
func GenerateTransactionID() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, txnSuffixLength)
	for i := range b {
		b[i] = base36Bytes[seededRand.Intn(len(base36Bytes))]
	}

	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), string(b))
}
