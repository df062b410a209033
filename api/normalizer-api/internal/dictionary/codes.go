// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"strings"

	internal_numerals "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/numerals"
)

// letterNames is how a letter is read when a code is spelled out.
var letterNames = map[rune]string{
	'A': "a", 'B': "bê", 'C': "xê", 'D': "đê", 'Đ': "đê", 'E': "ê",
	'F': "ép", 'G': "giê", 'H': "hát", 'I': "i", 'J': "gi", 'K': "ca",
	'L': "e-lờ", 'M': "em-mờ", 'N': "en-nờ", 'O': "ô", 'P': "pê", 'Q': "quy",
	'R': "e-rờ", 'S': "ét-xì", 'T': "tê", 'U': "u", 'V': "vê", 'W': "vê kép",
	'X': "ích-xì", 'Y': "i-grếc", 'Z': "dét",
}

// IsCode reports whether token is an uppercase code such as "VN" or "D19E":
// an uppercase letter followed by one or more uppercase letters or digits.
func IsCode(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 || !isCodeLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isCodeLetter(r) && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func isCodeLetter(r rune) bool {
	_, ok := letterNames[r]
	return ok
}

// SpellCodes rewrites uppercase codes in text. Codes the acronym dictionary
// knows are left for Replace; the rest are read letter by letter with digit
// runs read as numbers, so "D19E" becomes "đê mười chín ê".
func (l *Lookup) SpellCodes(text string) string {
	return RewriteTokens(text, func(token string) string {
		if !IsCode(token) || l.IsAcronym(token) {
			return token
		}
		return Spell(token)
	})
}

// Spell reads a code letter by letter, reading digit runs as numbers.
func Spell(code string) string {
	var words []string
	var digits strings.Builder
	flush := func() {
		if digits.Len() > 0 {
			words = append(words, internal_numerals.ToWords(digits.String()))
			digits.Reset()
		}
	}
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		flush()
		if name, ok := letterNames[r]; ok {
			words = append(words, name)
		} else {
			words = append(words, string(r))
		}
	}
	flush()
	return strings.Join(words, " ")
}
