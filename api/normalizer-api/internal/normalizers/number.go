// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var (
	thousandsPattern  = compile(`(\d{1,3}(?:\.\d{3})+)(?=\s|$|[^\d.,]|[.,](?!\d))`)
	decimalPattern    = compile(`(\d+),(\d+)(?=\s|$|[^\d,])`)
	negativePattern   = compile(`(?<=^|\s)-(\d+)\b`)
	standalonePattern = compile(`\b\d+\b`)
)

// decimalWords reads "<integer> phẩy <fraction>". Leading zeros of the
// fraction are not read.
func decimalWords(integer, fraction string) string {
	fraction = strings.TrimLeft(fraction, "0")
	if fraction == "" {
		fraction = "0"
	}
	return words(integer) + " phẩy " + words(fraction)
}

// =============================================================================
// Thousands separators
// =============================================================================

type thousandNormalizer struct {
	logger commons.Logger
}

// NewThousandNormalizer strips dot thousands separators: "1.500.000" becomes
// "1500000". A trailing sentence dot is not a separator.
func NewThousandNormalizer(logger commons.Logger) Normalizer {
	return &thousandNormalizer{logger: logger}
}

func (n *thousandNormalizer) Normalize(text string) string {
	return rewrite(thousandsPattern, text, func(m *regexp2.Match) string {
		return strings.ReplaceAll(m.String(), ".", "")
	})
}

// =============================================================================
// Decimals
// =============================================================================

type decimalNormalizer struct {
	logger commons.Logger
}

// NewDecimalNormalizer reads a comma decimal: "7,27" is "bảy phẩy hai mươi bảy".
func NewDecimalNormalizer(logger commons.Logger) Normalizer {
	return &decimalNormalizer{logger: logger}
}

func (n *decimalNormalizer) Normalize(text string) string {
	return rewrite(decimalPattern, text, func(m *regexp2.Match) string {
		return decimalWords(group(m, 1), group(m, 2))
	})
}

// =============================================================================
// Standalone numbers
// =============================================================================

type numberNormalizer struct {
	logger commons.Logger
}

// NewNumberNormalizer reads every digit run still left in the text. A minus
// sign at the start of a word is read as "âm".
func NewNumberNormalizer(logger commons.Logger) Normalizer {
	return &numberNormalizer{logger: logger}
}

func (n *numberNormalizer) Normalize(text string) string {
	text = rewrite(negativePattern, text, func(m *regexp2.Match) string {
		return words("-" + group(m, 1))
	})
	return rewrite(standalonePattern, text, func(m *regexp2.Match) string {
		return words(m.String())
	})
}
