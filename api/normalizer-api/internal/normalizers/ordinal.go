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

var ordinalPattern = compileFold(`(thứ|lần|bước|phần|chương|tập|số)\s*(\d+)`)

type ordinalNormalizer struct {
	logger commons.Logger
}

// NewOrdinalNormalizer reads a number after an ordinal word: "thứ 1" is
// "thứ nhất", "lần 4" is "lần tư". The prefix keeps its original case.
func NewOrdinalNormalizer(logger commons.Logger) Normalizer {
	return &ordinalNormalizer{logger: logger}
}

func (n *ordinalNormalizer) Normalize(text string) string {
	return rewrite(ordinalPattern, text, func(m *regexp2.Match) string {
		return group(m, 1) + " " + internal_numerals.Ordinal(group(m, 2))
	})
}
