// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_detector decides whether a single token already reads as
// Vietnamese and therefore must not be transliterated.
package internal_detector

import (
	"regexp"
	"strings"
)

const (
	toneMarks    = "àáảãạăằắẳẵặâầấẩẫậèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵđ"
	foreignChars = "fwzj"
)

var (
	syllablePattern = regexp.MustCompile(`^([^ueoaiy]*)([ueoaiy]+)([^ueoaiy]*)$`)
	englishNucleus  = regexp.MustCompile(`ee|oo|ea|ae|ie`)
)

var onsets = map[string]struct{}{
	"b": {}, "c": {}, "d": {}, "đ": {}, "g": {}, "h": {}, "k": {}, "l": {}, "m": {},
	"n": {}, "p": {}, "q": {}, "r": {}, "s": {}, "t": {}, "v": {}, "x": {},
	"ch": {}, "gh": {}, "gi": {}, "kh": {}, "ng": {}, "nh": {}, "ph": {}, "qu": {}, "th": {}, "tr": {},
}

var codas = map[string]struct{}{
	"p": {}, "t": {}, "c": {}, "m": {}, "n": {}, "ng": {}, "ch": {}, "nh": {},
}

// nuclei that look English but are legal Vietnamese vowel clusters
var allowedNuclei = map[string]struct{}{
	"oa": {}, "oe": {}, "ua": {}, "uy": {},
}

// Syllable is a token split as onset + vowel nucleus + coda.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
}

// Split splits a lowercase token into its syllable parts. It fails when the
// token holds anything but one contiguous vowel group.
func Split(word string) (Syllable, bool) {
	m := syllablePattern.FindStringSubmatch(word)
	if m == nil {
		return Syllable{}, false
	}
	return Syllable{Onset: m[1], Nucleus: m[2], Coda: m[3]}, true
}

// IsVietnamese reports whether word is Vietnamese. Any tone mark or đ wins,
// any of f w z j loses, otherwise the word must be a single syllable with a
// legal onset, coda and nucleus.
func IsVietnamese(word string) bool {
	w := strings.TrimSpace(strings.ToLower(word))
	if w == "" {
		return false
	}
	if strings.ContainsAny(w, toneMarks) {
		return true
	}
	if strings.ContainsAny(w, foreignChars) {
		return false
	}

	syllable, ok := Split(w)
	if !ok {
		return false
	}
	if syllable.Onset != "" {
		if _, ok := onsets[syllable.Onset]; !ok {
			return false
		}
	}
	if syllable.Coda != "" {
		if _, ok := codas[syllable.Coda]; !ok {
			return false
		}
	}
	if englishNucleus.MatchString(syllable.Nucleus) {
		if _, ok := allowedNuclei[syllable.Nucleus]; !ok {
			return false
		}
	}
	return true
}
