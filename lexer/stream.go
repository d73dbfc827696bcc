package lexer

import "github.com/gqlcore/lexer/token"

// Tokens is the batch result of tokenizing an entire input in one
// pass: Tokens always ends with exactly one Eof token; Errors may be
// empty.
type Tokens struct {
	Tokens []token.Token
	Errors []token.Error
}

// Tokenize runs the Scanner to completion and collects every token and
// error into parallel sequences, in source order. A hard error
// consumes no token; the scan resumes from wherever the cursor landed.
func Tokenize(source string) Tokens {
	s := NewScanner(source)
	result := Tokens{}

	for {
		tok, err := s.Next()
		if err != nil {
			result.Errors = append(result.Errors, *err)
			continue
		}
		result.Tokens = append(result.Tokens, tok)
		if tok.Kind == token.Eof {
			return result
		}
	}
}

// Iterator exposes the same scan as a lazy pull sequence instead of an
// eager collection, for callers that want to stop early or interleave
// scanning with their own processing.
type Iterator struct {
	scanner *Scanner
	done    bool
}

// NewIterator creates an Iterator over source.
func NewIterator(source string) *Iterator {
	return &Iterator{scanner: NewScanner(source)}
}

// Next returns the next token or error. ok is false once the Eof token
// (or a terminal hard error following it, which cannot happen) has
// already been yielded; no further calls produce anything.
func (it *Iterator) Next() (tok token.Token, err *token.Error, ok bool) {
	if it.done {
		return token.Token{}, nil, false
	}

	tok, err = it.scanner.Next()
	if err != nil {
		return token.Token{}, err, true
	}
	if tok.Kind == token.Eof {
		it.done = true
	}
	return tok, nil, true
}
