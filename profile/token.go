// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

// Kind classifies a token or highlight span.
type Kind int

const (
	// KindWord is a maximal run of word characters: letters, digits,
	// underscore, apostrophe, forward slash, hyphen, and dot. The
	// class is wide enough that paths (/usr/bin) and flag names
	// (private-bin, dbus-user.own) stay single tokens.
	KindWord Kind = iota

	// KindPunct is a maximal run of non-word, non-space characters.
	KindPunct

	// KindKeyword marks a word found in the keyword catalog. Only
	// produced by highlighting, never by the tokenizer itself.
	KindKeyword

	// KindComment marks a # through end of line.
	KindComment

	// KindVariable marks a ${NAME} reference (uppercase names only).
	KindVariable

	// KindPath marks a word token that begins with a forward slash.
	KindPath
)

// String returns the kind name as used in span export and theme files.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindPunct:
		return "punct"
	case KindKeyword:
		return "keyword"
	case KindComment:
		return "comment"
	case KindVariable:
		return "variable"
	case KindPath:
		return "path"
	}
	return "unknown"
}

// Token is one lexical unit of profile source. Start and End are byte
// offsets into the tokenized string, with End exclusive.
type Token struct {
	Text  string
	Start int
	End   int
	Kind  Kind
}

// Tokenizer scans profile source left to right, yielding word and
// punctuation tokens and skipping whitespace and # comments. It is
// single-pass: to rescan, construct a new Tokenizer.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer returns a tokenizer positioned at the start of src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token, or false when the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	t.skipBlank()
	if t.pos >= len(t.src) {
		return Token{}, false
	}
	start := t.pos
	kind := KindPunct
	if isWordByte(t.src[t.pos]) {
		kind = KindWord
		for t.pos < len(t.src) && isWordByte(t.src[t.pos]) {
			t.pos++
		}
	} else {
		for t.pos < len(t.src) && isPunctByte(t.src[t.pos]) {
			t.pos++
		}
	}
	return Token{
		Text:  t.src[start:t.pos],
		Start: start,
		End:   t.pos,
		Kind:  kind,
	}, true
}

// skipBlank advances past whitespace and comments. A # begins a
// comment unconditionally, extending to the next newline.
func (t *Tokenizer) skipBlank() {
	for t.pos < len(t.src) {
		switch {
		case isSpaceByte(t.src[t.pos]):
			t.pos++
		case t.src[t.pos] == '#':
			for t.pos < len(t.src) && t.src[t.pos] != '\n' {
				t.pos++
			}
		default:
			return
		}
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '\'', b == '/', b == '-', b == '.':
		return true
	}
	return false
}

func isPunctByte(b byte) bool {
	return !isSpaceByte(b) && !isWordByte(b) && b != '#'
}
