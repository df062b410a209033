// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"
	"strings"

	"github.com/nghimestudio/vietnormalizer/pkg/commons"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// CollapseWhitespace turns every whitespace run into one space and trims.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

type whitespaceNormalizer struct {
	logger commons.Logger
}

func NewWhitespaceNormalizer(logger commons.Logger) Normalizer {
	return &whitespaceNormalizer{logger: logger}
}

func (n *whitespaceNormalizer) Normalize(text string) string {
	return CollapseWhitespace(text)
}
