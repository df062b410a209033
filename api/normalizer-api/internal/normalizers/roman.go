// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strconv"

	"github.com/dlclark/regexp2"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var romanPattern = compile(`\b([IVXLC]{2,})\b`)

var romanValues = map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100}

// romanValue evaluates s right to left, subtracting a numeral smaller than the
// one after it. It returns -1 for any other letter.
func romanValue(s string) int {
	if s == "" {
		return -1
	}
	runes := []rune(s)
	total, prev := 0, 0
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := romanValues[runes[i]]
		if !ok {
			return -1
		}
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}

type romanNormalizer struct {
	logger commons.Logger
}

// NewRomanNormalizer reads upper case Roman numerals of two or more letters
// whose value is below 100. Larger values look too much like acronyms.
func NewRomanNormalizer(logger commons.Logger) Normalizer {
	return &romanNormalizer{logger: logger}
}

func (n *romanNormalizer) Normalize(text string) string {
	return rewrite(romanPattern, text, func(m *regexp2.Match) string {
		v := romanValue(group(m, 1))
		if v < 1 || v > 99 {
			n.logger.Debugf("normalizer: %q is outside the roman numeral range", m.String())
			return m.String()
		}
		return words(strconv.Itoa(v))
	})
}
