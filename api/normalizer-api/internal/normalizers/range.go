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
	yearRangePattern       = compile(`(\d{4})\s*[-–—]\s*(\d{4})`)
	percentageRangePattern = compile(`(\d+)\s*[-–—]\s*(\d+)\s*%`)
)

type yearRangeNormalizer struct {
	logger commons.Logger
}

// NewYearRangeNormalizer reads "1873-1907" as "<1873> đến <1907>". It runs
// before every other numeric pass so nothing else can claim the hyphen.
func NewYearRangeNormalizer(logger commons.Logger) Normalizer {
	return &yearRangeNormalizer{logger: logger}
}

func (n *yearRangeNormalizer) Normalize(text string) string {
	return rewrite(yearRangePattern, text, func(m *regexp2.Match) string {
		return internal_numerals.ToWords(group(m, 1)) + " đến " + internal_numerals.ToWords(group(m, 2))
	})
}

type percentageRangeNormalizer struct {
	logger commons.Logger
}

// NewPercentageRangeNormalizer reads "3-5%" as "ba đến năm phần trăm". It has
// to run before the date passes, which would otherwise see a day range.
func NewPercentageRangeNormalizer(logger commons.Logger) Normalizer {
	return &percentageRangeNormalizer{logger: logger}
}

func (n *percentageRangeNormalizer) Normalize(text string) string {
	return rewrite(percentageRangePattern, text, func(m *regexp2.Match) string {
		return internal_numerals.ToWords(group(m, 1)) + " đến " + internal_numerals.ToWords(group(m, 2)) + " phần trăm"
	})
}
