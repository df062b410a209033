// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_numerals "github.com/nghimestudio/vietnormalizer/api/normalizer-api/internal/numerals"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var (
	domesticPhonePattern = compile(`(?<!\d)0\d{9,10}(?!\d)`)
	intlPhonePattern     = compile(`(?<![\d+])\+84\d{9,10}(?!\d)`)
)

type phoneNormalizer struct {
	logger commons.Logger
}

// NewPhoneNormalizer reads 10 or 11 digit numbers starting with 0, and +84
// numbers, one digit at a time. The "+" is not read.
func NewPhoneNormalizer(logger commons.Logger) Normalizer {
	return &phoneNormalizer{logger: logger}
}

func (n *phoneNormalizer) Normalize(text string) string {
	spell := func(m *regexp2.Match) string {
		return internal_numerals.SpellDigits(m.String())
	}
	text = rewrite(domesticPhonePattern, text, spell)
	return rewrite(intlPhonePattern, text, spell)
}
