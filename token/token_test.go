package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LCurly, "LCurly"},
		{Name, "Name"},
		{Eof, "Eof"},
		{Kind(999), "Kind(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestNewEof(t *testing.T) {
	tok := NewEof(7)
	assert.Equal(t, Eof, tok.Kind)
	assert.Equal(t, "EOF", tok.Data)
	assert.Equal(t, 7, tok.Index)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Name, Data: "field", Index: 2}
	assert.Equal(t, `Name "field" @2`, tok.String())
}

func TestErrorError(t *testing.T) {
	err := NewErrorAt("unexpected character", "+a", 0)
	assert.Equal(t, `unexpected character: "+a" @0`, err.Error())
}

func TestSymbolsCoversEveryKind(t *testing.T) {
	for k := Bang; k <= Eof; k++ {
		_, ok := Symbols[k]
		assert.Truef(t, ok, "Kind %d missing from Symbols", int(k))
	}
}
