package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTransformations(t *testing.T) {
	r := Default()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lower", "HeLLo", "hello"},
		{"upper", "hello", "HELLO"},
		{"trim", "  hi  ", "hi"},
		{"length", "abcd", "4"},
		{"reverse", "abc", "cba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := r.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, fn(tt.input))
		})
	}
}

func TestLookupIsExact(t *testing.T) {
	r := Default()
	_, ok := r.Lookup("Lower")
	assert.False(t, ok, "lookup must match the name exactly as written")
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("shout", func(s string) string { return s + "!" })
	r.Register("shout", func(s string) string { return s + "!!" })

	fn, ok := r.Lookup("shout")
	require.True(t, ok)
	assert.Equal(t, "hi!!", fn("hi"))
}

func TestNames(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"length", "lower", "reverse", "trim", "upper"}, r.Names())
}
