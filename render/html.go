// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/firelight-tools/firelight/profile"
)

// HTML writes src as a standalone HTML document with inline styles,
// using chroma's HTML formatter. styleName selects a chroma style
// ("github", "monokai", ...); unknown names fall back to chroma's
// default.
func HTML(w io.Writer, src string, styleName string) error {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := html.New(html.Standalone(true), html.TabWidth(profile.DefaultIndentWidth))
	return formatter.Format(w, style, chroma.Literator(chromaTokens(src)...))
}

// chromaTokens flattens highlight spans into a chroma token stream.
// Gaps between spans become plain text tokens; line breaks are their
// own tokens so chroma's line-oriented formatters work unmodified.
func chromaTokens(src string) []chroma.Token {
	var tokens []chroma.Token
	emit := func(tokenType chroma.TokenType, value string) {
		if value != "" {
			tokens = append(tokens, chroma.Token{Type: tokenType, Value: value})
		}
	}
	for _, line := range profile.Highlight(src) {
		cursor := 0
		for _, span := range line.Spans {
			emit(chroma.Text, line.Text[cursor:span.Start])
			emit(chromaType(span), line.Text[span.Start:span.End])
			cursor = span.End
		}
		emit(chroma.Text, line.Text[cursor:])
		emit(chroma.Text, "\n")
	}
	return tokens
}

func chromaType(span profile.Span) chroma.TokenType {
	switch span.Kind {
	case profile.KindComment:
		return chroma.CommentSingle
	case profile.KindVariable:
		return chroma.NameVariable
	case profile.KindPath:
		return chroma.LiteralString
	case profile.KindKeyword:
		switch span.Category {
		case profile.CategoryDirective:
			return chroma.Keyword
		case profile.CategoryOption:
			return chroma.NameBuiltin
		case profile.CategoryPrivateOption:
			return chroma.NameBuiltinPseudo
		case profile.CategoryDbusOption:
			return chroma.NameNamespace
		case profile.CategorySpecialOption:
			return chroma.NameFunction
		case profile.CategoryLandlockOption:
			return chroma.NameLabel
		case profile.CategoryAllowOption:
			return chroma.NameDecorator
		}
	}
	return chroma.Text
}
