// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "testing"

func findSpan(spans []Span, kind Kind) (Span, bool) {
	for _, span := range spans {
		if span.Kind == kind {
			return span, true
		}
	}
	return Span{}, false
}

func TestHighlightLineCommentPriority(t *testing.T) {
	line := "private-bin # allow-debuggers"
	spans := HighlightLine(line)

	keyword, ok := findSpan(spans, KindKeyword)
	if !ok {
		t.Fatalf("no keyword span in %v", spans)
	}
	if line[keyword.Start:keyword.End] != "private-bin" {
		t.Errorf("keyword span covers %q, want private-bin", line[keyword.Start:keyword.End])
	}
	if keyword.Category != CategoryPrivateOption {
		t.Errorf("keyword category = %s, want private-option", keyword.Category)
	}

	comment, ok := findSpan(spans, KindComment)
	if !ok {
		t.Fatalf("no comment span in %v", spans)
	}
	if comment.Start != 12 || comment.End != len(line) {
		t.Errorf("comment span [%d,%d), want [12,%d)", comment.Start, comment.End, len(line))
	}

	// allow-debuggers is inside the comment and must not be marked
	// as a keyword.
	for _, span := range spans {
		if span.Kind == KindKeyword && span.Start > comment.Start {
			t.Errorf("keyword span %v inside comment", span)
		}
	}
}

func TestHighlightLineCommentInsidePath(t *testing.T) {
	// A # starts a comment even mid-path.
	line := "blacklist /tmp/#socket"
	spans := HighlightLine(line)
	comment, ok := findSpan(spans, KindComment)
	if !ok {
		t.Fatalf("no comment span in %v", spans)
	}
	if comment.Start != 15 {
		t.Errorf("comment starts at %d, want 15", comment.Start)
	}
	path, ok := findSpan(spans, KindPath)
	if !ok {
		t.Fatalf("no path span in %v", spans)
	}
	if line[path.Start:path.End] != "/tmp/" {
		t.Errorf("path span covers %q, want /tmp/", line[path.Start:path.End])
	}
}

func TestHighlightLineVariables(t *testing.T) {
	line := "whitelist ${HOME}/Downloads"
	spans := HighlightLine(line)

	variable, ok := findSpan(spans, KindVariable)
	if !ok {
		t.Fatalf("no variable span in %v", spans)
	}
	if line[variable.Start:variable.End] != "${HOME}" {
		t.Errorf("variable span covers %q, want ${HOME}", line[variable.Start:variable.End])
	}

	if _, ok := findSpan(HighlightLine("whitelist ${home}/Downloads"), KindVariable); ok {
		t.Error("${home} matched as variable; names must be uppercase")
	}
}

func TestHighlightLineUnterminatedVariable(t *testing.T) {
	spans := HighlightLine("noexec ${HOME")
	if _, ok := findSpan(spans, KindVariable); ok {
		t.Error("unterminated ${HOME matched as variable")
	}
	keyword, ok := findSpan(spans, KindKeyword)
	if !ok || keyword.Category != CategoryDirective {
		t.Errorf("noexec not classified as directive: %v", spans)
	}
}

func TestHighlightLinePaths(t *testing.T) {
	line := "/usr/bin/firefox"
	spans := HighlightLine(line)
	if len(spans) != 1 || spans[0].Kind != KindPath {
		t.Fatalf("spans = %v, want one path span", spans)
	}
	if spans[0].Start != 0 || spans[0].End != len(line) {
		t.Errorf("path span [%d,%d), want whole line", spans[0].Start, spans[0].End)
	}
}

func TestHighlightLineSpansSortedNonOverlapping(t *testing.T) {
	line := "bind /run/foo,${RUNUSER}/bar # mount pair"
	spans := HighlightLine(line)
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].End {
			t.Fatalf("spans overlap or unsorted: %v", spans)
		}
	}
}

func TestHighlightLineNumbers(t *testing.T) {
	result := Highlight("noroot\n\ninclude globals.local\n")
	if len(result) != 3 {
		t.Fatalf("got %d lines, want 3", len(result))
	}
	for i, lineSpans := range result {
		if lineSpans.Line != i+1 {
			t.Errorf("line %d numbered %d", i, lineSpans.Line)
		}
	}
	if len(result[1].Spans) != 0 {
		t.Errorf("blank line produced spans: %v", result[1].Spans)
	}
	keyword, ok := findSpan(result[2].Spans, KindKeyword)
	if !ok || keyword.Category != CategoryDirective {
		t.Errorf("include not classified on line 3: %v", result[2].Spans)
	}
}
