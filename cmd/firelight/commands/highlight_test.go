// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/firelight-tools/firelight/lib/codec"
	"github.com/firelight-tools/firelight/profile"
)

func TestSpanRecords(t *testing.T) {
	records := spanRecords(profile.Highlight("noblacklist /tmp # keep\n"))

	want := []SpanRecord{
		{Line: 1, Start: 0, End: 11, Kind: "keyword", Category: "directive"},
		{Line: 1, Start: 12, End: 16, Kind: "path"},
		{Line: 1, Start: 17, End: 23, Kind: "comment"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
	}
	for i, record := range records {
		if record != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, record, want[i])
		}
	}
}

func TestSpanRecordsCBORRoundTrip(t *testing.T) {
	records := spanRecords(profile.Highlight("include globals.local\nprivate-tmp\n"))
	data, err := codec.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded []SpanRecord
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(records))
	}
	for i := range records {
		if decoded[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, decoded[i], records[i])
		}
	}
}

func TestResolveColorProfile(t *testing.T) {
	if p, err := resolveColorProfile("always"); err != nil || p != termenv.ANSI256 {
		t.Errorf("always = %v, %v", p, err)
	}
	if p, err := resolveColorProfile("never"); err != nil || p != termenv.Ascii {
		t.Errorf("never = %v, %v", p, err)
	}
	if _, err := resolveColorProfile("sometimes"); err == nil {
		t.Error("expected error for unknown color mode")
	}
}
