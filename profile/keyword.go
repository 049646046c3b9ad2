// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "sort"

// Category identifies which keyword list a profile keyword was
// declared in. Renderers may give each category its own treatment,
// so the distinction is preserved even though all categories behave
// identically during tokenization.
type Category int

const (
	// CategoryDirective marks instructions that take a file-path-like
	// argument: include, blacklist, whitelist, and their relatives.
	CategoryDirective Category = iota

	// CategoryOption marks flag-style instructions that enable or
	// disable a sandboxing feature.
	CategoryOption

	// CategoryPrivateOption marks the private-* family.
	CategoryPrivateOption

	// CategoryDbusOption marks the dbus-user/dbus-system family,
	// including their dotted filter forms.
	CategoryDbusOption

	// CategorySpecialOption marks dotted modifier forms (caps.drop,
	// seccomp.keep) and instructions taking structured arguments.
	CategorySpecialOption

	// CategoryLandlockOption marks the landlock.* family.
	CategoryLandlockOption

	// CategoryAllowOption marks instructions that relax a default
	// restriction rather than add one.
	CategoryAllowOption
)

// String returns the category name as used in span export and theme
// files.
func (c Category) String() string {
	switch c {
	case CategoryDirective:
		return "directive"
	case CategoryOption:
		return "option"
	case CategoryPrivateOption:
		return "private-option"
	case CategoryDbusOption:
		return "dbus-option"
	case CategorySpecialOption:
		return "special-option"
	case CategoryLandlockOption:
		return "landlock-option"
	case CategoryAllowOption:
		return "allow-option"
	}
	return "unknown"
}

var directives = []string{
	"blacklist",
	"blacklist-nolog",
	"ignore",
	"include",
	"mkdir",
	"mkfile",
	"noblacklist",
	"noexec",
	"nowhitelist",
	"read-only",
	"read-write",
	"tmpfs",
	"whitelist",
}

var options = []string{
	"apparmor",
	"caps",
	"deterministic-exit-code",
	"deterministic-shutdown",
	"disable-mnt",
	"dns",
	"hostname",
	"hosts-file",
	"ipc-namespace",
	"keep-config-pulse",
	"keep-dev-shm",
	"keep-fd",
	"keep-var-tmp",
	"machine-id",
	"memory-deny-write-execute",
	"name",
	"net",
	"netfilter",
	"netfilter6",
	"netmask",
	"netns",
	"nice",
	"no3d",
	"noautopulse",
	"nodvd",
	"nogroups",
	"noinput",
	"nonewprivs",
	"noprinters",
	"noroot",
	"nosound",
	"notv",
	"nou2f",
	"novideo",
	"protocol",
	"quiet",
	"seccomp",
	"shell",
	"timeout",
	"tracelog",
	"writable-etc",
	"writable-run-user",
	"writable-var",
	"writable-var-log",
	"x11",
}

var privateOptions = []string{
	"private",
	"private-bin",
	"private-cache",
	"private-cwd",
	"private-dev",
	"private-etc",
	"private-home",
	"private-lib",
	"private-opt",
	"private-srv",
	"private-tmp",
}

var dbusOptions = []string{
	"dbus-system",
	"dbus-system.broadcast",
	"dbus-system.call",
	"dbus-system.own",
	"dbus-system.see",
	"dbus-system.talk",
	"dbus-user",
	"dbus-user.broadcast",
	"dbus-user.call",
	"dbus-user.own",
	"dbus-user.see",
	"dbus-user.talk",
}

var specialOptions = []string{
	"bind",
	"caps.drop",
	"caps.keep",
	"env",
	"join-or-start",
	"restrict-namespaces",
	"rmenv",
	"seccomp.32",
	"seccomp.block-secondary",
	"seccomp.drop",
	"seccomp.keep",
}

var landlockOptions = []string{
	"landlock.enforce",
	"landlock.fs.execute",
	"landlock.fs.makedev",
	"landlock.fs.makeipc",
	"landlock.fs.read",
	"landlock.fs.write",
}

var allowOptions = []string{
	"allow-debuggers",
	"allusers",
}

// catalog is the immutable keyword-to-category map. Built once at
// init and only ever read afterwards, so it is safe to share across
// goroutines without locking.
var catalog = buildCatalog()

func buildCatalog() map[string]Category {
	m := make(map[string]Category)
	add := func(words []string, category Category) {
		for _, w := range words {
			m[w] = category
		}
	}
	add(directives, CategoryDirective)
	add(options, CategoryOption)
	add(privateOptions, CategoryPrivateOption)
	add(dbusOptions, CategoryDbusOption)
	add(specialOptions, CategorySpecialOption)
	add(landlockOptions, CategoryLandlockOption)
	add(allowOptions, CategoryAllowOption)
	return m
}

// Classify reports the category of word if it exactly equals one of
// the known profile keywords. Matching is case-sensitive and whole-
// token: "net" is a keyword, "network" and "NET" are not. Absence is
// the normal outcome for arguments, paths, and variable names.
func Classify(word string) (Category, bool) {
	category, ok := catalog[word]
	return category, ok
}

// Keyword pairs a catalog entry with its category, for listings.
type Keyword struct {
	Text     string
	Category Category
}

// Keywords returns the full catalog sorted by keyword text. When
// categories are given, only entries from those categories are
// returned.
func Keywords(categories ...Category) []Keyword {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	var list []Keyword
	for text, category := range catalog {
		if len(categories) > 0 && !want[category] {
			continue
		}
		list = append(list, Keyword{Text: text, Category: category})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// ParseCategory resolves a category name as produced by
// [Category.String]. Used by the CLI's category filter.
func ParseCategory(name string) (Category, bool) {
	for _, c := range []Category{
		CategoryDirective,
		CategoryOption,
		CategoryPrivateOption,
		CategoryDbusOption,
		CategorySpecialOption,
		CategoryLandlockOption,
		CategoryAllowOption,
	} {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
