package lexer

import (
	"io"
	"io/ioutil"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gqlcore/lexer/token"
)

// participleLexer adapts a Scanner to participle/v2's lexer.Lexer
// interface, the seam a downstream syntactic parser (out of scope
// here) would build its grammar against.
type participleLexer struct {
	filename string
	scanner  *Scanner
}

// Next implements lexer.Lexer. A hard or recoverable lexical error is
// surfaced as a Go error, which ends the participle-driven parse at
// that point — participle's interface has no notion of the scanner's
// own "continue past one bad token" recovery, so the adapter defers to
// whatever the caller does with a non-nil error.
func (l *participleLexer) Next() (lexer.Token, error) {
	tok, err := l.scanner.Next()
	if err != nil {
		return lexer.Token{}, err
	}

	typ := lexer.TokenType(tok.Kind)
	if tok.Kind == token.Eof {
		typ = lexer.EOF
	}

	return lexer.Token{
		Type:  typ,
		Value: tok.Data,
		Pos: lexer.Position{
			Filename: l.filename,
			Offset:   tok.Index,
		},
	}, nil
}

// Definition implements the participle lexer.Definition interface over
// this package's Scanner.
type Definition struct{}

// Lex implements lexer.Definition.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(data))
}

// LexString implements lexer.Definition.
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &participleLexer{filename: filename, scanner: NewScanner(input)}, nil
}

// LexBytes implements lexer.Definition.
func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

var (
	symbolsOnce   sync.Once
	cachedSymbols map[string]lexer.TokenType
)

// Symbols implements lexer.Definition, building the symbol table on
// first use and caching it.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = make(map[string]lexer.TokenType, len(token.Symbols))
		for kind, name := range token.Symbols {
			if kind == token.Eof {
				cachedSymbols[name] = lexer.EOF
				continue
			}
			cachedSymbols[name] = lexer.TokenType(kind)
		}
	})
	return cachedSymbols
}
