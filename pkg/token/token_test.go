package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupSymbol(t *testing.T) {
	tests := []struct {
		literal string
		want    Kind
	}{
		{"select", SELECT},
		{"from", FROM},
		{"where", WHERE},
		{"limit", LIMIT},
		{"offset", OFFSET},
		{"order", ORDER},
		{"by", BY},
		// Case-sensitive: capitalized variants are plain symbols
		{"Select", SYMBOL},
		{"SELECT", SYMBOL},
		{"Order", SYMBOL},
		{"title", SYMBOL},
		{"selection", SYMBOL},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupSymbol(tt.literal))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "=", EQ.String())
	assert.Equal(t, "SYMBOL", SYMBOL.String())
	assert.Equal(t, "UNKNOWN", Kind(999).String())
}
