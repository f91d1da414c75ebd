// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokComma
	tokColon
	tokSemicolon
	tokLabel
)

// A token is a lexical element of a Newick string.
type token struct {
	kind tokenKind
	pos  int
	text string // raw text of the token

	// for labels
	value  string
	quoted bool
}

// A scanner splits a Newick string into tokens.
type scanner struct {
	src string
	pos int
}

// next returns the next token,
// skipping blanks and bracket comments.
func (s *scanner) next() (token, error) {
	if err := s.skip(); err != nil {
		return token{}, err
	}
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, pos: s.pos}, nil
	}

	start := s.pos
	var k tokenKind
	switch s.src[s.pos] {
	case '(':
		k = tokOpen
	case ')':
		k = tokClose
	case ',':
		k = tokComma
	case ':':
		k = tokColon
	case ';':
		k = tokSemicolon
	case '\'', '"':
		return s.quoted()
	default:
		return s.label(), nil
	}
	s.pos++
	return token{kind: k, pos: start, text: s.src[start:s.pos]}, nil
}

// skip advances over blanks and bracket comments.
func (s *scanner) skip() error {
	for s.pos < len(s.src) {
		r, n := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsSpace(r) {
			s.pos += n
			continue
		}
		if r != '[' {
			return nil
		}
		end := strings.IndexByte(s.src[s.pos:], ']')
		if end < 0 {
			return &ParseError{
				Pos:   s.pos,
				Token: "[",
				Msg:   "unterminated comment",
			}
		}
		s.pos += end + 1
	}
	return nil
}

// quoted reads a quoted label.
// A doubled quote character is read
// as a literal quote.
func (s *scanner) quoted() (token, error) {
	start := s.pos
	q := s.src[s.pos]
	s.pos++

	var b strings.Builder
	for {
		i := strings.IndexByte(s.src[s.pos:], q)
		if i < 0 {
			s.pos = len(s.src)
			return token{}, &ParseError{
				Pos:   start,
				Token: s.src[start:],
				Msg:   "unterminated quoted label",
			}
		}
		b.WriteString(s.src[s.pos : s.pos+i])
		s.pos += i + 1
		if s.pos < len(s.src) && s.src[s.pos] == q {
			b.WriteByte(q)
			s.pos++
			continue
		}
		break
	}

	return token{
		kind:   tokLabel,
		pos:    start,
		text:   s.src[start:s.pos],
		value:  b.String(),
		quoted: true,
	}, nil
}

// label reads an unquoted label.
func (s *scanner) label() token {
	start := s.pos
	for s.pos < len(s.src) {
		r, n := utf8.DecodeRuneInString(s.src[s.pos:])
		if isDelim(r) || unicode.IsSpace(r) {
			break
		}
		s.pos += n
	}
	return token{
		kind:  tokLabel,
		pos:   start,
		text:  s.src[start:s.pos],
		value: s.src[start:s.pos],
	}
}

func isDelim(r rune) bool {
	switch r {
	case '(', ')', ',', ':', ';', '[', '\'', '"':
		return true
	}
	return false
}
