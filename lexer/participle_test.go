package lexer

import (
	"strings"
	"testing"

	participlelexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlcore/lexer/token"
)

func TestDefinitionSymbolsCoversEveryKind(t *testing.T) {
	def := &Definition{}
	symbols := def.Symbols()
	for kind, name := range token.Symbols {
		typ, ok := symbols[name]
		require.Truef(t, ok, "symbol %q missing", name)
		if kind == token.Eof {
			assert.Equal(t, participlelexer.EOF, typ)
		} else {
			assert.Equal(t, participlelexer.TokenType(kind), typ)
		}
	}
}

func TestDefinitionLexStringProducesTokens(t *testing.T) {
	def := &Definition{}
	lx, err := def.LexString("test.graphql", "{ a }")
	require.NoError(t, err)

	var got []participlelexer.Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		got = append(got, tok)
		if tok.Type == participlelexer.EOF {
			break
		}
	}

	require.Len(t, got, 6)
	assert.Equal(t, "{", got[0].Value)
	assert.Equal(t, 0, got[0].Pos.Offset)
	assert.Equal(t, "test.graphql", got[0].Pos.Filename)
}

func TestDefinitionLexSurfacesLexicalErrors(t *testing.T) {
	def := &Definition{}
	lx, err := def.LexString("bad.graphql", "..x")
	require.NoError(t, err)

	_, err = lx.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated spread operator")
}

func TestDefinitionLexReadsFromReader(t *testing.T) {
	def := &Definition{}
	lx, err := def.Lex("r.graphql", strings.NewReader("$x"))
	require.NoError(t, err)

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, "$", tok.Value)
}
