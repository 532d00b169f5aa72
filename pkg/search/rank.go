// Package search ranks named items against a free-text query.
package search

import (
	"sort"
	"strings"
)

// MatchKind describes how an item name matched the query
type MatchKind int

const (
	NoMatch MatchKind = iota
	ContainsMatch
	PrefixMatch
)

// Match classifies name against query, ignoring case. An empty query is a
// prefix of everything.
func Match(name, query string) MatchKind {
	n := strings.ToLower(name)
	q := strings.ToLower(query)
	switch {
	case strings.HasPrefix(n, q):
		return PrefixMatch
	case strings.Contains(n, q):
		return ContainsMatch
	default:
		return NoMatch
	}
}

// Rank keeps the items whose name contains query and orders prefix matches
// before the rest. Ties keep their input order. The input is not modified.
func Rank[T any](items []T, query string, name func(T) string) []T {
	type ranked struct {
		item T
		kind MatchKind
	}

	matches := make([]ranked, 0, len(items))
	for _, item := range items {
		if kind := Match(name(item), query); kind != NoMatch {
			matches = append(matches, ranked{item: item, kind: kind})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].kind > matches[j].kind
	})

	out := make([]T, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}

// Limit truncates results to at most max items; max <= 0 means no limit
func Limit[T any](items []T, max int) []T {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}
