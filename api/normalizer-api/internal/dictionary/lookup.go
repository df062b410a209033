// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Kind separates the two dictionaries. Acronyms win over words on the same key.
type Kind string

const (
	KindAcronym Kind = "acronym"
	KindWord    Kind = "word"
)

// Entry is one key to pronunciation mapping as read from a source.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type candidate struct {
	key   []rune
	value string
}

// Lookup is an immutable dictionary snapshot. It is safe for concurrent use
// and is replaced as a whole on reload, never mutated.
type Lookup struct {
	version  string
	builtAt  time.Time
	entries  map[string]string
	acronyms map[string]struct{}
	// candidates indexed by the first token of their key, longest key first
	byHead  map[string][]candidate
	sources []SourceStatus
	skipped int
}

// Build merges both dictionaries into a snapshot. Keys are lowercased and
// trimmed, values trimmed, empty pairs dropped.
func Build(acronyms, words []Entry) *Lookup {
	l := &Lookup{
		version:  uuid.NewString(),
		builtAt:  time.Now(),
		entries:  make(map[string]string, len(acronyms)+len(words)),
		acronyms: make(map[string]struct{}, len(acronyms)),
		byHead:   make(map[string][]candidate),
	}
	for _, e := range words {
		if key, value, ok := clean(e); ok {
			l.entries[key] = value
		}
	}
	for _, e := range acronyms {
		if key, value, ok := clean(e); ok {
			l.entries[key] = value
			l.acronyms[key] = struct{}{}
		}
	}

	for key, value := range l.entries {
		head := headToken(key)
		if head == "" {
			l.skipped++
			continue
		}
		l.byHead[head] = append(l.byHead[head], candidate{key: []rune(key), value: value})
	}
	for head := range l.byHead {
		bucket := l.byHead[head]
		sort.Slice(bucket, func(i, j int) bool {
			if len(bucket[i].key) != len(bucket[j].key) {
				return len(bucket[i].key) > len(bucket[j].key)
			}
			return string(bucket[i].key) < string(bucket[j].key)
		})
	}
	return l
}

func clean(e Entry) (string, string, bool) {
	key := strings.ToLower(strings.TrimSpace(e.Key))
	value := strings.TrimSpace(e.Value)
	return key, value, key != "" && value != ""
}

// headToken is the first token of key, or "" when key does not start with a
// word character.
func headToken(key string) string {
	tokens := Tokens(key)
	if len(tokens) == 0 || tokens[0].Start != 0 {
		return ""
	}
	return tokens[0].Text
}

func (l *Lookup) Version() string    { return l.version }
func (l *Lookup) BuiltAt() time.Time { return l.builtAt }
func (l *Lookup) Len() int           { return len(l.entries) }

// Sources reports how each source fared when the snapshot was loaded.
func (l *Lookup) Sources() []SourceStatus { return l.sources }

// Resolve returns the pronunciation of a single token, matched case-insensitively.
func (l *Lookup) Resolve(token string) (string, bool) {
	value, ok := l.entries[strings.ToLower(token)]
	return value, ok
}

// IsAcronym reports whether key came from the acronym dictionary.
func (l *Lookup) IsAcronym(key string) bool {
	_, ok := l.acronyms[strings.ToLower(key)]
	return ok
}

// Replace substitutes dictionary keys found in text, preferring the longest
// key starting at each token. A key only matches at token boundaries and the
// replacement takes its leading capital from the matched text.
func (l *Lookup) Replace(text string) string {
	if len(l.entries) == 0 || text == "" {
		return text
	}
	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for i := 0; i < len(runes); {
		if !IsWordRune(runes[i]) || (i > 0 && IsWordRune(runes[i-1])) {
			i++
			continue
		}
		end := i
		for end < len(runes) && IsWordRune(runes[end]) {
			end++
		}
		c, ok := l.match(lower, i, string(lower[i:end]))
		if !ok {
			i = end
			continue
		}
		matchEnd := i + len(c.key)
		sb.WriteString(string(runes[last:i]))
		sb.WriteString(MatchCase(string(runes[i:matchEnd]), c.value))
		last = matchEnd
		i = matchEnd
	}
	if last == 0 {
		return text
	}
	sb.WriteString(string(runes[last:]))
	return sb.String()
}

func (l *Lookup) match(lower []rune, at int, head string) (candidate, bool) {
	for _, c := range l.byHead[head] {
		end := at + len(c.key)
		if end > len(lower) {
			continue
		}
		if end < len(lower) && IsWordRune(lower[end]) && IsWordRune(c.key[len(c.key)-1]) {
			continue
		}
		if equalRunes(lower[at:end], c.key) {
			return c, true
		}
	}
	return candidate{}, false
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
