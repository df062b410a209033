// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a maximal run of word characters. Start and End are byte offsets.
type Token struct {
	Text  string
	Start int
	End   int
}

// IsWordRune reports whether r belongs inside a token.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Tokens splits text into word tokens.
func Tokens(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if IsWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

// RewriteTokens rebuilds text with every token passed through fn. Text
// between tokens is kept as is.
func RewriteTokens(text string, fn func(token string) string) string {
	tokens := Tokens(text)
	if len(tokens) == 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, tok := range tokens {
		sb.WriteString(text[last:tok.Start])
		sb.WriteString(fn(tok.Text))
		last = tok.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// MatchCase capitalises the first letter of replacement when surface starts
// with an uppercase letter.
func MatchCase(surface, replacement string) string {
	first, _ := utf8.DecodeRuneInString(surface)
	if first == utf8.RuneError || !unicode.IsUpper(first) || replacement == "" {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}
