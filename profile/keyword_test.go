// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "testing"

func TestClassifyCoversEveryList(t *testing.T) {
	lists := []struct {
		words    []string
		category Category
	}{
		{directives, CategoryDirective},
		{options, CategoryOption},
		{privateOptions, CategoryPrivateOption},
		{dbusOptions, CategoryDbusOption},
		{specialOptions, CategorySpecialOption},
		{landlockOptions, CategoryLandlockOption},
		{allowOptions, CategoryAllowOption},
	}
	for _, list := range lists {
		for _, word := range list.words {
			category, ok := Classify(word)
			if !ok {
				t.Errorf("Classify(%q): not found, want %s", word, list.category)
				continue
			}
			if category != list.category {
				t.Errorf("Classify(%q) = %s, want %s", word, category, list.category)
			}
		}
	}
}

func TestClassifyCaseSensitive(t *testing.T) {
	if _, ok := Classify("noroot"); !ok {
		t.Fatal("noroot should be a keyword")
	}
	if _, ok := Classify("NOROOT"); ok {
		t.Error("NOROOT should not match: catalog lookup is case-sensitive")
	}
}

func TestClassifyNoSubstringMatch(t *testing.T) {
	if _, ok := Classify("net"); !ok {
		t.Fatal("net should be a keyword")
	}
	if _, ok := Classify("network"); ok {
		t.Error("network should not match even though net is a keyword")
	}
}

func TestClassifyOrdinaryWords(t *testing.T) {
	for _, word := range []string{"", "firefox", "/usr/bin", "${HOME}", "noblacklist2"} {
		if category, ok := Classify(word); ok {
			t.Errorf("Classify(%q) = %s, want no match", word, category)
		}
	}
}

func TestKeywordsSortedAndFiltered(t *testing.T) {
	all := Keywords()
	if len(all) < 90 {
		t.Errorf("catalog has %d keywords, expected at least 90", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Text >= all[i].Text {
			t.Fatalf("Keywords() not sorted: %q before %q", all[i-1].Text, all[i].Text)
		}
	}

	landlock := Keywords(CategoryLandlockOption)
	if len(landlock) != len(landlockOptions) {
		t.Errorf("Keywords(landlock) returned %d entries, want %d", len(landlock), len(landlockOptions))
	}
	for _, kw := range landlock {
		if kw.Category != CategoryLandlockOption {
			t.Errorf("Keywords(landlock) included %q with category %s", kw.Text, kw.Category)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{
		CategoryDirective,
		CategoryOption,
		CategoryPrivateOption,
		CategoryDbusOption,
		CategorySpecialOption,
		CategoryLandlockOption,
		CategoryAllowOption,
	} {
		parsed, ok := ParseCategory(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, true", c.String(), parsed, ok, c)
		}
	}
	if _, ok := ParseCategory("bogus"); ok {
		t.Error("ParseCategory(bogus) should fail")
	}
}
