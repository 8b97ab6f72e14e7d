// File: lexer.go
// Title: Lexical Analyzer (Tokenizer)
// Description: Converts mictylish source text into a token stream that is
//              always terminated by a single zero-length EOF token. The
//              first lexical problem aborts the run with a located error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

// Package lexer turns source text into tokens.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/mictylish/foundation/lang/diag"
	"github.com/msto63/mictylish/foundation/lang/span"
	"github.com/msto63/mictylish/foundation/lang/token"
)

// eof is the sentinel rune for end of input
const eof rune = -1

// Lexer performs lexical analysis of a single source text
type Lexer struct {
	input   string // Input string
	pos     int    // Offset of the current rune
	readPos int    // Offset after the current rune
	ch      rune   // Current rune, eof at end of input
}

// New creates a lexer for the given source
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Lex tokenizes source in one call
func Lex(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// Tokenize returns every token of the input. On error no tokens are returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		l.skipWhitespace()
		if l.ch == eof {
			break
		}

		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, token.New(token.EOF, span.New(len(l.input), 0)))
	return tokens, nil
}

// nextToken lexes the token starting at the current rune
func (l *Lexer) nextToken() (token.Token, error) {
	start := l.pos

	switch {
	case isIdentStart(l.ch):
		return l.readIdentifier(), nil
	case isDigit(l.ch):
		return l.readInteger()
	}

	switch l.ch {
	case '"':
		return l.readString()
	case '|':
		return l.readPair('>', token.PipeGreater)
	case '-':
		return l.readPair('>', token.Arrow)
	case '<':
		return l.readPair('-', token.LeftArrow)
	}

	kind, ok := singles[l.ch]
	if !ok {
		return token.Token{}, diag.NewLexError(
			fmt.Sprintf("unexpected character '%c'", l.ch),
			span.New(start, l.readPos-start),
		)
	}
	l.readChar()
	return token.New(kind, span.New(start, 1)), nil
}

var singles = map[rune]token.Kind{
	'=': token.Equal,
	',': token.Comma,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
}

// readChar advances to the next rune
func (l *Lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = eof
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += width
}

func (l *Lexer) skipWhitespace() {
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readIdentifier reads a keyword or identifier; keywords always win
func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	for isIdentContinue(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.pos]
	sp := span.New(start, l.pos-start)

	if kind := token.Lookup(text); kind != token.Ident {
		return token.New(kind, sp)
	}
	return token.NewIdent(text, sp)
}

// readInteger reads a maximal run of ASCII digits as a signed 64-bit value
func (l *Lexer) readInteger() (token.Token, error) {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.pos]
	sp := span.New(start, l.pos-start)

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, diag.NewLexError(fmt.Sprintf("invalid integer literal '%s'", text), sp)
	}
	return token.NewInt(value, sp), nil
}

// readString reads a double-quoted literal. Content is taken verbatim.
func (l *Lexer) readString() (token.Token, error) {
	start := l.pos
	l.readChar() // consume opening quote

	for l.ch != eof {
		if l.ch == '"' {
			content := l.input[start+1 : l.pos]
			l.readChar()
			return token.NewString(content, span.New(start, l.pos-start)), nil
		}
		l.readChar()
	}

	return token.Token{}, diag.NewLexError("unterminated string literal", span.New(start, len(l.input)-start))
}

// readPair reads a two-character operator whose second character must be want
func (l *Lexer) readPair(want rune, kind token.Kind) (token.Token, error) {
	start := l.pos
	first := l.ch
	l.readChar()

	message := fmt.Sprintf("expected '%c' after '%c'", want, first)
	switch l.ch {
	case want:
		l.readChar()
		return token.New(kind, span.New(start, 2)), nil
	case eof:
		return token.Token{}, diag.NewLexError(message, span.New(start, 1))
	default:
		return token.Token{}, diag.NewLexError(
			fmt.Sprintf("%s, found '%c'", message, l.ch),
			span.New(l.pos, l.readPos-l.pos),
		)
	}
}

func isIdentStart(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
