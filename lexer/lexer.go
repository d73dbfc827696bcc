// Package lexer implements the scanner state machine and the
// token-stream facade built on top of internal/cursor.
package lexer

import (
	"fmt"

	"github.com/gqlcore/lexer/internal/cursor"
	"github.com/gqlcore/lexer/token"
)

// state names the scanner's internal states, one per partially-scanned
// construct of the GraphQL lexical grammar.
type state int

const (
	stateStart state = iota
	stateIdent
	statePlusMinus
	stateIntLiteral
	stateFloatLiteral
	stateExponentLiteral
	stateStringLiteralStart
	stateStringLiteral
	stateBlockStringLiteral
	stateStringLiteralBackslash
	stateSpreadOperator
	stateWhitespace
	stateComment
)

// Scanner is invoked once per token: each call to Next drives the
// cursor through exactly one token or error and returns to top level.
type Scanner struct {
	cur *cursor.Cursor
}

// NewScanner creates a Scanner over source. The Scanner borrows source
// for the lifetime of the tokenization pass; every returned Token's
// Data borrows from it too.
func NewScanner(source string) *Scanner {
	return &Scanner{cur: cursor.New(source)}
}

// Next scans and returns the next token, or an error describing why
// one could not be formed. Exactly one of the two results carries
// meaning: on error, the returned Token is the zero value.
func (s *Scanner) Next() (token.Token, *token.Error) {
	c := s.cur
	st := stateStart
	tok := token.Token{Kind: token.Eof, Data: "EOF", Index: c.Index()}

	for {
		ch := c.Bump()
		if ch == cursor.EOF {
			return s.atEndOfInput(st, tok)
		}

		switch st {
		case stateStart:
			switch {
			case ch == '"':
				tok.Kind = token.StringValue
				st = stateStringLiteralStart
			case ch == '#':
				tok.Kind = token.Comment
				st = stateComment
			case ch == '.':
				tok.Kind = token.Spread
				st = stateSpreadOperator
			case isWhitespace(ch):
				tok.Kind = token.Whitespace
				st = stateWhitespace
			case isIdentStart(ch):
				tok.Kind = token.Name
				st = stateIdent
			case ch == '+' || ch == '-':
				tok.Kind = token.Int
				st = statePlusMinus
			case isDigit(ch):
				tok.Kind = token.Int
				st = stateIntLiteral
			case ch == '!':
				tok.Kind, tok.Data = token.Bang, c.CurrentStr()
				return s.finish(tok)
			case ch == '$':
				tok.Kind, tok.Data = token.Dollar, c.CurrentStr()
				return s.finish(tok)
			case ch == '&':
				tok.Kind, tok.Data = token.Amp, c.CurrentStr()
				return s.finish(tok)
			case ch == '(':
				tok.Kind, tok.Data = token.LParen, c.CurrentStr()
				return s.finish(tok)
			case ch == ')':
				tok.Kind, tok.Data = token.RParen, c.CurrentStr()
				return s.finish(tok)
			case ch == ':':
				tok.Kind, tok.Data = token.Colon, c.CurrentStr()
				return s.finish(tok)
			case ch == ',':
				tok.Kind, tok.Data = token.Comma, c.CurrentStr()
				return s.finish(tok)
			case ch == '=':
				tok.Kind, tok.Data = token.Eq, c.CurrentStr()
				return s.finish(tok)
			case ch == '@':
				tok.Kind, tok.Data = token.At, c.CurrentStr()
				return s.finish(tok)
			case ch == '[':
				tok.Kind, tok.Data = token.LBracket, c.CurrentStr()
				return s.finish(tok)
			case ch == ']':
				tok.Kind, tok.Data = token.RBracket, c.CurrentStr()
				return s.finish(tok)
			case ch == '{':
				tok.Kind, tok.Data = token.LCurly, c.CurrentStr()
				return s.finish(tok)
			case ch == '|':
				tok.Kind, tok.Data = token.Pipe, c.CurrentStr()
				return s.finish(tok)
			case ch == '}':
				tok.Kind, tok.Data = token.RCurly, c.CurrentStr()
				return s.finish(tok)
			default:
				data := c.CurrentStr()
				msg := fmt.Sprintf("Unexpected character \"%c\"", ch)
				return token.Token{}, token.NewErrorAt(msg, data, tok.Index)
			}

		case stateIdent:
			if isIdentChar(ch) {
				continue
			}
			tok.Data = c.PrevStr()
			return s.finish(tok)

		case stateWhitespace:
			if isWhitespace(ch) {
				continue
			}
			tok.Data = c.PrevStr()
			return s.finish(tok)

		case stateComment:
			if isLineTerminator(ch) {
				tok.Data = c.PrevStr()
				return s.finish(tok)
			}
			continue

		case statePlusMinus:
			if isDigit(ch) {
				st = stateIntLiteral
				continue
			}
			c.TakeErr()
			data := c.PrevStr()
			msg := fmt.Sprintf("Unexpected character `%s`", data+string(ch))
			return token.Token{}, token.NewErrorAt(msg, data, tok.Index)

		case stateIntLiteral:
			switch {
			case isDigit(ch):
				continue
			case ch == '.':
				tok.Kind = token.Float
				st = stateFloatLiteral
				continue
			case ch == 'e' || ch == 'E':
				tok.Kind = token.Float
				st = stateExponentLiteral
				continue
			default:
				tok.Data = c.PrevStr()
				return s.finish(tok)
			}

		case stateFloatLiteral:
			switch {
			case isDigit(ch):
				continue
			case ch == '.':
				c.SetErr(token.NewError("Unexpected character `.`", "."))
				continue
			case ch == 'e' || ch == 'E':
				st = stateExponentLiteral
				continue
			default:
				tok.Data = c.PrevStr()
				return s.finish(tok)
			}

		case stateExponentLiteral:
			switch {
			case isDigit(ch):
				st = stateFloatLiteral
				continue
			case ch == '+' || ch == '-':
				st = stateFloatLiteral
				continue
			default:
				c.TakeErr()
				data := c.PrevStr()
				msg := fmt.Sprintf("Unexpected character `%s`", data+string(ch))
				return token.Token{}, token.NewErrorAt(msg, data, tok.Index)
			}

		case stateStringLiteralStart:
			switch {
			case ch == '"':
				if c.Eatc('"') {
					st = stateBlockStringLiteral
					continue
				}
				if c.Pending() {
					tok.Data = c.PrevStr()
				} else {
					tok.Data = c.CurrentStr()
				}
				return s.finish(tok)
			case ch == '\\':
				st = stateStringLiteralBackslash
				continue
			default:
				st = stateStringLiteral
				continue
			}

		case stateStringLiteral:
			switch {
			case ch == '"':
				tok.Data = c.CurrentStr()
				return s.finish(tok)
			case isLineTerminator(ch):
				c.SetErr(token.NewError("unexpected line terminator", ""))
				continue
			case ch == '\\':
				st = stateStringLiteralBackslash
				continue
			default:
				continue
			}

		case stateStringLiteralBackslash:
			if isEscapedChar(ch) || ch == 'u' {
				st = stateStringLiteral
				continue
			}
			c.SetErr(token.NewError("unexpected escaped character", string(ch)))
			st = stateStringLiteral
			continue

		case stateBlockStringLiteral:
			switch {
			case ch == '"':
				if c.Eatc('"') && c.Eatc('"') {
					tok.Data = c.CurrentStr()
					return s.finish(tok)
				}
				continue
			case isSourceChar(ch):
				continue
			default:
				tok.Data = c.PrevStr()
				return s.finish(tok)
			}

		case stateSpreadOperator:
			if ch == '.' {
				if c.PendingLen() == 3 {
					tok.Data = c.CurrentStr()
					return s.finish(tok)
				}
				continue
			}
			c.SetErr(token.NewError("Unterminated spread operator", ""))
			tok.Data = c.PrevStr()
			return s.finish(tok)
		}
	}
}

// finish applies the error-finalization rule shared by every normal
// token completion: a pending recoverable error, if any, takes over
// the token's slice and index and is returned instead of the token.
func (s *Scanner) finish(tok token.Token) (token.Token, *token.Error) {
	if err := s.cur.TakeErr(); err != nil {
		err.Data = tok.Data
		err.Index = tok.Index
		return token.Token{}, err
	}
	return tok, nil
}

// atEndOfInput handles reaching end of input mid-scan. Three states
// are hard errors with bespoke messages, Start yields the terminal Eof
// token, and every other state either surfaces a pending recoverable
// error or emits its partially accumulated token normally.
func (s *Scanner) atEndOfInput(st state, tok token.Token) (token.Token, *token.Error) {
	c := s.cur

	switch st {
	case stateStart:
		return token.NewEof(c.Index() + 1), nil

	case stateStringLiteralStart:
		data := c.CurrentStr()
		return token.Token{}, token.NewErrorAt(
			"unexpected end of data while lexing string value", data, tok.Index)

	case stateStringLiteral:
		data := c.Drain()
		return token.Token{}, token.NewErrorAt("unterminated string value", data, tok.Index)

	case stateSpreadOperator:
		data := c.CurrentStr()
		return token.Token{}, token.NewErrorAt("Unterminated spread operator", data, tok.Index)

	default:
		tok.Data = c.CurrentStr()
		return s.finish(tok)
	}
}
