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

type currencyForm struct {
	pattern *regexp2.Regexp
	unit    string
}

// VND forms run before USD forms.
var currencyForms = []currencyForm{
	{compileFold(`(\d+(?:,\d+)?)\s*(?:đồng|VND|vnđ)\b`), "đồng"},
	{compileFold(`(\d+(?:,\d+)?)đ(?![a-zà-ỹ])`), "đồng"},
	{compile(`\$\s*(\d+(?:,\d+)?)`), "đô la"},
	{compileFold(`(\d+(?:,\d+)?)\s*(?:USD|\$)`), "đô la"},
}

type currencyNormalizer struct {
	logger commons.Logger
}

// NewCurrencyNormalizer reads Vietnamese dong and US dollar amounts. Commas
// inside the amount are treated as thousands separators.
func NewCurrencyNormalizer(logger commons.Logger) Normalizer {
	return &currencyNormalizer{logger: logger}
}

func (n *currencyNormalizer) Normalize(text string) string {
	for _, form := range currencyForms {
		unit := form.unit
		text = rewrite(form.pattern, text, func(m *regexp2.Match) string {
			return words(strings.ReplaceAll(group(m, 1), ",", "")) + " " + unit
		})
	}
	return text
}
