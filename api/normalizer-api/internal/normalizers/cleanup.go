// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	"github.com/nghimestudio/vietnormalizer/pkg/commons"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// Unicode
// =============================================================================

type unicodeNormalizer struct {
	logger commons.Logger
}

// NewUnicodeNormalizer composes combining diacritics (NFC), so "a" followed by
// a combining acute becomes the single rune "á".
func NewUnicodeNormalizer(logger commons.Logger) Normalizer {
	return &unicodeNormalizer{logger: logger}
}

func (n *unicodeNormalizer) Normalize(text string) string {
	return norm.NFC.String(text)
}

// =============================================================================
// Symbols
// =============================================================================

var (
	urlPattern   = compile(`https?://\S+|www\.\S+`)
	emailPattern = compile(`\S+@\S+\.\S+`)

	symbolReplacer = strings.NewReplacer(
		"&", " và ",
		"@", " a còng ",
		"#", " thăng ",
		"*", "",
		"_", " ",
		"~", "",
		"`", "",
		"^", "",
	)
)

type symbolNormalizer struct {
	logger commons.Logger
}

// NewSymbolNormalizer drops URLs and e-mail addresses and spells out or
// removes symbols that cannot be read aloud.
func NewSymbolNormalizer(logger commons.Logger) Normalizer {
	return &symbolNormalizer{logger: logger}
}

func (n *symbolNormalizer) Normalize(text string) string {
	text = substitute(urlPattern, text, "")
	text = substitute(emailPattern, text, "")
	return symbolReplacer.Replace(text)
}

// =============================================================================
// Punctuation
// =============================================================================

var (
	ellipsisPattern     = compile(`\.{3,}|…`)
	repeatedMarkPattern = compile(`([!?])[!?]+`)
	doubleDotPattern    = compile(`(?<!\.)\.\.(?!\.)`)

	quoteReplacer = strings.NewReplacer(
		"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
		"‘", "'", "’", "'", "‚", "'", "‛", "'",
	)
)

type punctuationNormalizer struct {
	logger commons.Logger
}

// NewPunctuationNormalizer straightens curly quotes, turns any run of dots
// into "..." and collapses repeated "!" and "?" to one mark.
func NewPunctuationNormalizer(logger commons.Logger) Normalizer {
	return &punctuationNormalizer{logger: logger}
}

func (n *punctuationNormalizer) Normalize(text string) string {
	text = quoteReplacer.Replace(text)
	text = substitute(ellipsisPattern, text, "...")
	text = substitute(repeatedMarkPattern, text, "$1")
	return substitute(doubleDotPattern, text, ".")
}

// =============================================================================
// Cleanup
// =============================================================================

var (
	unspokenPattern  = compile(`[\\()¯"]`)
	dashPausePattern = compile(`(?<!\d)(?:\s+[—–]|[—–](?=\s))(?!\s*\d)`)
	longDashPattern  = compile(`[–—−]`)
	loneDashPattern  = compile(`(?<!\d)-(?!\d)`)
)

// inSpeakableRange keeps Latin (through Latin Extended-B) and the Latin
// Extended Additional block that carries the Vietnamese precomposed letters.
func inSpeakableRange(r rune) bool {
	return r <= 0x024F || (r >= 0x1E00 && r <= 0x1EFF)
}

type cleanupNormalizer struct {
	logger commons.Logger
	filter transform.Transformer
}

// NewCleanupNormalizer removes characters a synthesizer cannot voice. Emoji and
// any rune outside the Latin and Vietnamese ranges are dropped, a dash next
// to a space becomes a pause, and a hyphen survives only when it touches a digit
// so "12-2023" and "3-5" still reach the date and range passes.
func NewCleanupNormalizer(logger commons.Logger) Normalizer {
	return &cleanupNormalizer{
		logger: logger,
		filter: runes.Remove(runes.Predicate(func(r rune) bool { return !inSpeakableRange(r) })),
	}
}

func (n *cleanupNormalizer) Normalize(text string) string {
	text = substitute(unspokenPattern, text, "")
	text = substitute(dashPausePattern, text, ".")
	text = substitute(longDashPattern, text, "-")
	text = substitute(loneDashPattern, text, " ")

	out, _, err := transform.String(n.filter, text)
	if err != nil {
		n.logger.Debugf("normalizer: unable to filter characters: %v", err)
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(out)
}
