// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var (
	decimalPercentPattern = compile(`(\d+),(\d+)\s*%`)
	percentPattern        = compile(`(\d+)\s*%`)
)

type percentageNormalizer struct {
	logger commons.Logger
}

// NewPercentageNormalizer reads "3,2%" and "50%". Ranges are handled earlier
// by the percentage range pass.
func NewPercentageNormalizer(logger commons.Logger) Normalizer {
	return &percentageNormalizer{logger: logger}
}

func (n *percentageNormalizer) Normalize(text string) string {
	text = rewrite(decimalPercentPattern, text, func(m *regexp2.Match) string {
		return decimalWords(group(m, 1), group(m, 2)) + " phần trăm"
	})
	return rewrite(percentPattern, text, func(m *regexp2.Match) string {
		return words(group(m, 1)) + " phần trăm"
	})
}
