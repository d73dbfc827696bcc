// Package cursor implements the byte-offset-addressable peekable
// character iterator the scanner drives one token at a time. It is
// the sole owner of position bookkeeping and the single-slot error
// register described by the lexer's design.
package cursor

import (
	"unicode/utf8"

	"github.com/gqlcore/lexer/token"
)

// EOF is returned by Bump once the input is exhausted.
const EOF rune = -1

// Cursor borrows source for its entire lifetime and is never reused
// past one tokenization pass. The invariant index <= prevOffset <=
// offset <= len(source) holds between scanner iterations.
type Cursor struct {
	source string

	index      int // start offset of the token currently being accumulated
	offset     int // byte offset just past the most recently examined character
	prevOffset int // byte offset at which that character started

	pending    rune
	hasPending bool

	err *token.Error
}

// New creates a Cursor over source.
func New(source string) *Cursor {
	return &Cursor{source: source}
}

// Index returns the start offset of the token currently being
// accumulated.
func (c *Cursor) Index() int {
	return c.index
}

// Pending reports whether a character is stashed in the pending slot.
func (c *Cursor) Pending() bool {
	return c.hasPending
}

// PendingLen reports how many bytes have been examined past Index.
// The spread-operator state uses this to know when exactly two
// further '.' characters have been bumped.
func (c *Cursor) PendingLen() int {
	return c.offset - c.index
}

// Bump returns the next character, consuming it. If a character is
// pending it is returned and the slot cleared; otherwise the next
// rune is decoded from source[offset:] and offset advances past it.
// Returns EOF once input is exhausted; prevOffset then moves to the end
// of input, so a following PrevStr takes everything through the last
// character and leaves nothing pending.
func (c *Cursor) Bump() rune {
	if c.hasPending {
		c.hasPending = false
		r := c.pending
		c.pending = 0
		return r
	}

	if c.offset >= len(c.source) {
		c.prevOffset = c.offset
		return EOF
	}

	r, w := utf8.DecodeRuneInString(c.source[c.offset:])
	c.prevOffset = c.offset
	c.offset += w
	return r
}

// Eatc consumes the next character if it equals want, returning true.
// Otherwise the character read is stashed as pending and Eatc returns
// false (EOF never matches and never stashes anything). Calling Eatc
// while a character is already pending is a programming bug, not a
// recoverable condition.
func (c *Cursor) Eatc(want rune) bool {
	if c.hasPending {
		panic("cursor: eatc called with a pending character")
	}

	if c.offset >= len(c.source) {
		return false
	}

	r, w := utf8.DecodeRuneInString(c.source[c.offset:])
	c.prevOffset = c.offset
	c.offset += w

	if r == want {
		return true
	}

	c.pending = r
	c.hasPending = true
	return false
}

// CurrentStr finalizes the token through the most recently bumped
// character inclusive: that character IS part of the token. index
// advances past it, and the following character (if any) is
// pre-loaded into the pending slot.
func (c *Cursor) CurrentStr() string {
	c.hasPending = false
	c.pending = 0

	slice := c.source[c.index:c.offset]
	c.index = c.offset
	c.prevOffset = c.index

	if c.index < len(c.source) {
		r, w := utf8.DecodeRuneInString(c.source[c.index:])
		c.pending = r
		c.hasPending = true
		c.offset = c.index + w
	}

	return slice
}

// PrevStr finalizes the token up to, but excluding, the most recently
// bumped character: that character belongs to the next token. index
// advances to its start, and it is pre-loaded into the pending slot,
// decoded again from source at that offset.
func (c *Cursor) PrevStr() string {
	slice := c.source[c.index:c.prevOffset]
	c.index = c.prevOffset

	if c.index < len(c.source) {
		c.hasPending = true
		c.pending, _ = utf8.DecodeRuneInString(c.source[c.index:])
	} else {
		c.hasPending = false
		c.pending = 0
	}

	return slice
}

// Drain consumes the remainder of input, returning everything from the
// current token's start through end of input. Used for catastrophic
// recovery (e.g. an unterminated string value) where the rest of the
// buffer must be folded into the single reported error to preserve
// losslessness.
func (c *Cursor) Drain() string {
	c.hasPending = false
	c.pending = 0
	slice := c.source[c.index:]
	c.offset = len(c.source)
	c.prevOffset = c.offset
	c.index = c.offset
	return slice
}

// SetErr overwrites the single-slot error register.
func (c *Cursor) SetErr(err *token.Error) {
	c.err = err
}

// TakeErr returns and clears the single-slot error register.
func (c *Cursor) TakeErr() *token.Error {
	err := c.err
	c.err = nil
	return err
}
