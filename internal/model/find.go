package model

import "strings"

// MenuSeparator splits the levels of a menu path such as "mnuFile;mnuOpen".
const MenuSeparator = ";"

// Entry is an element together with the alias it was given in its scope.
type Entry struct {
	Alias   string
	Element *Element
}

// Windows assigns aliases to the top-level windows in roots, in order.
func Windows(roots []Element) []Entry {
	a := NewAliaser()
	entries := make([]Entry, 0, len(roots))
	for i := range roots {
		entries = append(entries, Entry{Alias: a.Next(&roots[i]), Element: &roots[i]})
	}
	return entries
}

// Objects lists every descendant of parent in depth-first document order
// with aliases unique within parent.
func Objects(parent *Element) []Entry {
	a := NewAliaser()
	var entries []Entry
	var walk func(el *Element)
	walk = func(el *Element) {
		for i := range el.Children {
			child := &el.Children[i]
			entries = append(entries, Entry{Alias: a.Next(child), Element: child})
			walk(child)
		}
	}
	walk(parent)
	return entries
}

// FindWindow returns the first window in roots matching pattern, or nil.
func FindWindow(roots []Element, pattern string) *Element {
	if pattern == "" {
		return nil
	}
	return first(Windows(roots), pattern)
}

// FindObject resolves object inside window. The window itself is returned
// when object matches it; a ';'-separated object is walked as a menu path,
// each level searched among the descendants of the previous one.
func FindObject(window *Element, object string) *Element {
	if object == "" {
		return nil
	}
	if strings.Contains(object, MenuSeparator) {
		return findMenuPath(window, SplitMenuPath(object))
	}
	if Match(object, window.Name, Alias(window.Role, window.Name)) {
		return window
	}
	return first(Objects(window), object)
}

// SplitMenuPath splits a menu hierarchy into its non-empty levels.
func SplitMenuPath(object string) []string {
	var levels []string
	for _, part := range strings.Split(object, MenuSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			levels = append(levels, part)
		}
	}
	return levels
}

func findMenuPath(window *Element, levels []string) *Element {
	if len(levels) == 0 {
		return nil
	}
	current := window
	for _, level := range levels {
		current = first(Objects(current), level)
		if current == nil {
			return nil
		}
	}
	return current
}

// first prefers an exact name or alias hit over a glob hit.
func first(entries []Entry, pattern string) *Element {
	for _, e := range entries {
		if pattern == e.Element.Name || pattern == e.Alias {
			return e.Element
		}
	}
	for _, e := range entries {
		if Match(pattern, e.Element.Name, e.Alias) {
			return e.Element
		}
	}
	return nil
}
