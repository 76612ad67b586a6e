package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-\d+-[0-9a-z]{9}$`)

	first := GenerateTransactionID()
	second := GenerateTransactionID()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}
