package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// stripRe matches the characters LDTP drops from accessible names.
var stripRe = regexp.MustCompile(`[ :._\n\t]+`)

// StripName removes spaces, colons, dots, underscores and line breaks from an
// accessible name.
func StripName(name string) string {
	return stripRe.ReplaceAllString(name, "")
}

// Alias returns the LDTP-convention name for an element: the role prefix
// followed by the stripped name. Unnamed elements get only the prefix; see
// Aliaser for how indexes are appended.
func Alias(role, name string) string {
	return Abbreviation(role) + StripName(name)
}

// Aliaser hands out unique aliases within one scope (the list of windows, or
// the objects of one window). Unnamed elements are numbered per prefix from
// 0; repeated names are numbered from 1.
type Aliaser struct {
	seen    map[string]int
	unnamed map[string]int
}

// NewAliaser returns an empty Aliaser.
func NewAliaser() *Aliaser {
	return &Aliaser{seen: make(map[string]int), unnamed: make(map[string]int)}
}

// Next returns the alias for the next element in document order.
func (a *Aliaser) Next(el *Element) string {
	prefix := Abbreviation(el.Role)
	stripped := StripName(el.Name)
	if stripped == "" {
		n := a.unnamed[prefix]
		a.unnamed[prefix] = n + 1
		return prefix + strconv.Itoa(n)
	}
	base := prefix + stripped
	n := a.seen[base]
	a.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return base + strconv.Itoa(n)
}

var (
	globMu    sync.Mutex
	globCache = make(map[string]glob.Glob)
)

// HasGlobMeta reports whether pattern contains glob metacharacters.
func HasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// Glob reports whether s matches the shell-style pattern. '*' matches any
// run of characters including '/', '?' matches one character, and
// '[...]'/'[!...]' match character classes. A malformed pattern matches
// nothing.
func Glob(pattern, s string) bool {
	g, err := compileGlob(pattern)
	if err != nil {
		return false
	}
	return g.Match(s)
}

// compileGlob compiles pattern without separators, so '*' also spans '/'.
// Failures are cached too.
func compileGlob(pattern string) (glob.Glob, error) {
	globMu.Lock()
	defer globMu.Unlock()
	if g, ok := globCache[pattern]; ok {
		if g == nil {
			return nil, fmt.Errorf("invalid glob %q", pattern)
		}
		return g, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		globCache[pattern] = nil
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	globCache[pattern] = g
	return g, nil
}

// Match reports whether pattern names an element with the given accessible
// name and LDTP alias: exactly, by alias, or as a glob over either.
func Match(pattern, name, alias string) bool {
	if pattern == name || pattern == alias {
		return true
	}
	if StripName(pattern) == alias {
		return true
	}
	if !HasGlobMeta(pattern) {
		return false
	}
	return Glob(pattern, name) || Glob(pattern, alias)
}
