// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// Normalizer is a single rewrite pass over the whole text. A pass never fails:
// a candidate that does not validate is left as it was.
type Normalizer interface {
	Normalize(text string) string
}

// =============================================================================
// Regex helpers
// =============================================================================

func compile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

func compileFold(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase)
}

// rewrite replaces every match with the result of fn.
func rewrite(re *regexp2.Regexp, text string, fn func(m *regexp2.Match) string) string {
	out, err := re.ReplaceFunc(text, func(m regexp2.Match) string {
		return fn(&m)
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// substitute replaces every match with a template that may use $1 style groups.
func substitute(re *regexp2.Regexp, text, replacement string) string {
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// group returns the text of capture n, or "" when it did not participate.
func group(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// between reports whether the decimal string s is within [lo, hi].
func between(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}
