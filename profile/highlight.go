// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a classified region of a single line. Start and End are
// byte offsets within the line, End exclusive. Spans returned by
// [HighlightLine] are sorted by Start and never overlap; the gaps
// between them are plain text.
type Span struct {
	Start    int
	End      int
	Kind     Kind
	Category Category
}

// LineSpans is the highlight result for one line of source. Line is
// 1-based.
type LineSpans struct {
	Line  int
	Text  string
	Spans []Span
}

// variablePattern recognizes ${NAME} references. Names are uppercase
// with digits and underscores, matching the expansion variables the
// firejail dialect accepts (${HOME}, ${DOWNLOADS}, ...). A lowercase
// or unterminated form is not a variable and falls through to the
// generic word/punctuation split.
var variablePattern = regexp.MustCompile(`\$\{[A-Z_][A-Z0-9_]*\}`)

// HighlightLine classifies one line of profile source into spans.
//
// Priority order: a # anywhere starts a comment that consumes the
// rest of the line; keywords are catalog hits on whole word tokens;
// ${NAME} variables are recognized by a second pass over the raw
// text, overriding the generic split; word tokens beginning with /
// are paths. Plain words and punctuation produce no span.
func HighlightLine(line string) []Span {
	body := line
	commentAt := strings.IndexByte(line, '#')
	if commentAt >= 0 {
		body = line[:commentAt]
	}

	var spans []Span
	tokenizer := NewTokenizer(body)
	for {
		token, ok := tokenizer.Next()
		if !ok {
			break
		}
		if token.Kind != KindWord {
			continue
		}
		if category, ok := Classify(token.Text); ok {
			spans = append(spans, Span{
				Start:    token.Start,
				End:      token.End,
				Kind:     KindKeyword,
				Category: category,
			})
			continue
		}
		if token.Text[0] == '/' {
			spans = append(spans, Span{Start: token.Start, End: token.End, Kind: KindPath})
		}
	}

	// Variable overlay: ${NAME} spans the ${, the name, and the }
	// even though those tokenize as three separate runs. Keywords
	// cannot overlap a match (keywords contain no $ or { and no
	// uppercase), so only path spans need to yield; they cannot
	// overlap either since the word class excludes $.
	for _, match := range variablePattern.FindAllStringIndex(body, -1) {
		spans = append(spans, Span{Start: match[0], End: match[1], Kind: KindVariable})
	}

	if commentAt >= 0 {
		spans = append(spans, Span{Start: commentAt, End: len(line), Kind: KindComment})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// Highlight classifies every line of src. The trailing newline, if
// any, does not produce an empty final entry.
func Highlight(src string) []LineSpans {
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	result := make([]LineSpans, len(lines))
	for i, line := range lines {
		result[i] = LineSpans{Line: i + 1, Text: line, Spans: HighlightLine(line)}
	}
	return result
}
