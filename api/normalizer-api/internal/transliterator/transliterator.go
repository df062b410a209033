// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_transliterator spells a foreign word the way a Vietnamese
// reader would pronounce it, e.g. "hello" becomes "he-lo".
package internal_transliterator

import (
	"strings"

	"github.com/dlclark/regexp2"
	internal_detector "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/detector"
)

const vowels = "aeiouăâêôơưáàảãạắằẳẵặấầẩẫậéèẻẽẹếềểễệíìỉĩịóòỏõọốồổỗộớờởỡợúùủũụứừửữựýỳỷỹỵ"

var (
	syllablePattern        = regexp2.MustCompile(`([^`+vowels+`]*[`+vowels+`]+[ptcmngs]?(?![`+vowels+`]))`, regexp2.None)
	consonantYPattern      = regexp2.MustCompile(`([bcdfghjklmnpqrstvwxz])y`, regexp2.None)
	trailingYPattern       = regexp2.MustCompile(`y$`, regexp2.None)
	doubleConsonantPattern = regexp2.MustCompile(`([brlptdgmnckxsvfzjwqh])\1+`, regexp2.None)
)

var validPairs = map[string]struct{}{
	"ch": {}, "th": {}, "ph": {}, "sh": {}, "ng": {}, "tr": {}, "nh": {}, "gh": {}, "kh": {},
}

const (
	consonants  = "bcdfghjklmnpqrstvwxz"
	validCodas  = "ptcmngs"
	softeningKV = "iey"
)

// Transliterate returns word unchanged when it already reads as Vietnamese,
// otherwise its hyphen joined Vietnamese syllables. The result depends only
// on the input.
func Transliterate(word string) string {
	if word == "" || internal_detector.IsVietnamese(word) {
		return word
	}
	return toVietnamese(word)
}

func toVietnamese(word string) string {
	w := strings.TrimSpace(strings.ToLower(word))
	if w == "" {
		return ""
	}

	if strings.HasPrefix(w, "y") {
		w = "d" + w[1:]
	}
	if strings.HasPrefix(w, "d") {
		w = "đ" + w[1:]
	}
	w = applyAll(w)

	parts := syllables(w)
	if len(parts) == 0 {
		return w
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := processSyllable(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "-")
}

// applyAll runs the three rule tables and the y rules.
func applyAll(w string) string {
	w = applyRules(w, highPriorityRules)
	w = applyRules(w, endingRules)
	w = applyRules(w, generalRules)
	w = replace(consonantYPattern, w, "${1}i")
	return replace(trailingYPattern, w, "i")
}

func processSyllable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "y") {
		s = "d" + s[1:]
	}
	s = applyAll(s)
	s = cleanClusters(s)
	s = applyCKRule(s)
	return filterEnding(s)
}

// syllables cuts w at vowel groups, keeping at most one coda consonant each.
// Characters that fit no syllable are dropped.
func syllables(w string) []string {
	var parts []string
	m, err := syllablePattern.FindStringMatch(w)
	for err == nil && m != nil {
		parts = append(parts, m.GroupByNumber(1).String())
		m, err = syllablePattern.FindNextMatch(m)
	}
	return parts
}

// cleanClusters collapses doubled consonants and keeps only consonant pairs
// Vietnamese can start a syllable with. For any other pair the second
// consonant survives.
func cleanClusters(p string) string {
	p = replace(doubleConsonantPattern, p, "$1")

	runes := []rune(p)
	var sb strings.Builder
	for i := 0; i < len(runes); {
		if i < len(runes)-1 && isConsonant(runes[i]) && isConsonant(runes[i+1]) {
			pair := string(runes[i : i+2])
			if _, ok := validPairs[pair]; ok {
				sb.WriteString(pair)
			} else {
				sb.WriteRune(runes[i+1])
			}
			i += 2
			continue
		}
		sb.WriteRune(runes[i])
		i++
	}
	return sb.String()
}

// applyCKRule writes k before i, e and y, c everywhere else.
func applyCKRule(p string) string {
	for _, digraph := range []string{"ch", "th", "ph", "sh"} {
		if strings.HasPrefix(p, digraph) {
			return p
		}
	}
	if !strings.HasPrefix(p, "k") && !strings.HasPrefix(p, "c") {
		return p
	}
	rest := p[1:]
	if rest != "" && strings.ContainsRune(softeningKV, []rune(rest)[0]) {
		return "k" + rest
	}
	return "c" + rest
}

// filterEnding drops a final consonant Vietnamese cannot end on; l becomes n.
func filterEnding(p string) string {
	runes := []rune(p)
	if len(runes) <= 1 {
		return p
	}
	last := runes[len(runes)-1]
	if strings.ContainsRune(vowels, last) || strings.ContainsRune(validCodas, last) {
		return p
	}
	if last == 'l' {
		return string(runes[:len(runes)-1]) + "n"
	}
	return string(runes[:len(runes)-1])
}

func isConsonant(r rune) bool {
	return strings.ContainsRune(consonants, r)
}

func replace(re *regexp2.Regexp, input, replacement string) string {
	out, err := re.Replace(input, replacement, -1, -1)
	if err != nil {
		return input
	}
	return out
}
