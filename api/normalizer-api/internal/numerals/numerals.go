// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_numerals renders decimal digit strings as spoken Vietnamese.
package internal_numerals

import (
	"strconv"
	"strings"
)

// digits[d] is the reading of a single digit.
var digits = [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

var teens = [10]string{
	"mười", "mười một", "mười hai", "mười ba", "mười bốn",
	"mười lăm", "mười sáu", "mười bảy", "mười tám", "mười chín",
}

// ordinals overrides the cardinal reading after words like "thứ".
var ordinals = map[string]string{
	"1": "nhất", "2": "hai", "3": "ba", "4": "tư", "5": "năm",
	"6": "sáu", "7": "bảy", "8": "tám", "9": "chín", "10": "mười",
}

type magnitude struct {
	value uint64
	word  string
}

var magnitudes = []magnitude{
	{1_000_000_000, "tỷ"},
	{1_000_000, "triệu"},
	{1_000, "nghìn"},
}

// digitByDigitFrom is the first value read one digit at a time.
const digitByDigitFrom = 1_000_000_000_000

// ToWords reads a digit string. A leading "-" is read as "âm", leading zeros
// are ignored and anything that is not a digit string is returned unchanged.
func ToWords(num string) string {
	if num == "" {
		return num
	}
	if num[0] == '-' {
		if !isDigits(num[1:]) {
			return num
		}
		return "âm " + ToWords(num[1:])
	}
	if !isDigits(num) {
		return num
	}

	trimmed := strings.TrimLeft(num, "0")
	if trimmed == "" {
		return digits[0]
	}
	// 13+ significant digits is at least 10^12
	if len(trimmed) > 12 {
		return SpellDigits(trimmed)
	}
	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil || n >= digitByDigitFrom {
		return SpellDigits(trimmed)
	}
	return readNumber(n)
}

// SpellDigits reads every digit of s on its own, skipping non digits.
func SpellDigits(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			words = append(words, digits[r-'0'])
		}
	}
	return strings.Join(words, " ")
}

// Ordinal reads num after an ordinal prefix: 1 is "nhất", 4 is "tư", and
// anything outside 1..10 falls back to ToWords.
func Ordinal(num string) string {
	if word, ok := ordinals[num]; ok {
		return word
	}
	return ToWords(num)
}

// Digit reads a single digit character.
func Digit(r rune) (string, bool) {
	if r < '0' || r > '9' {
		return "", false
	}
	return digits[r-'0'], true
}

func readNumber(n uint64) string {
	switch {
	case n < 10:
		return digits[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		return readTens(n)
	case n < 1000:
		return readHundreds(n)
	}

	for _, m := range magnitudes {
		if n < m.value {
			continue
		}
		head := readNumber(n/m.value) + " " + m.word
		rest := n % m.value
		switch {
		case rest == 0:
			return head
		case rest < 10:
			return head + " không trăm lẻ " + digits[rest]
		case rest < 100:
			return head + " không trăm " + readNumber(rest)
		default:
			return head + " " + readNumber(rest)
		}
	}
	return SpellDigits(strconv.FormatUint(n, 10))
}

func readTens(n uint64) string {
	tens, unit := n/10, n%10
	var sb strings.Builder
	sb.WriteString(digits[tens])
	sb.WriteString(" mươi")
	switch unit {
	case 0:
	case 1:
		sb.WriteString(" mốt")
	case 4:
		sb.WriteString(" tư")
	case 5:
		sb.WriteString(" lăm")
	default:
		sb.WriteString(" ")
		sb.WriteString(digits[unit])
	}
	return sb.String()
}

func readHundreds(n uint64) string {
	head := digits[n/100] + " trăm"
	rest := n % 100
	switch {
	case rest == 0:
		return head
	case rest < 10:
		return head + " lẻ " + digits[rest]
	default:
		return head + " " + readNumber(rest)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
