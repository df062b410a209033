// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// Mock Logger Implementation
// =============================================================================

type mockLogger struct {
	warnMessages []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{
		warnMessages: make([]string, 0),
	}
}

func (m *mockLogger) Level() zapcore.Level                        { return zapcore.DebugLevel }
func (m *mockLogger) Debug(args ...interface{})                   {}
func (m *mockLogger) Debugf(template string, args ...interface{}) {}
func (m *mockLogger) Info(args ...interface{})                    {}
func (m *mockLogger) Infof(template string, args ...interface{})  {}
func (m *mockLogger) Warn(args ...interface{})                    {}
func (m *mockLogger) Warnf(template string, args ...interface{}) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, args...))
}
func (m *mockLogger) Error(args ...interface{})                    {}
func (m *mockLogger) Errorf(template string, args ...interface{})  {}
func (m *mockLogger) DPanic(args ...interface{})                   {}
func (m *mockLogger) DPanicf(template string, args ...interface{}) {}
func (m *mockLogger) Panic(args ...interface{})                    {}
func (m *mockLogger) Panicf(template string, args ...interface{})  {}
func (m *mockLogger) Fatal(args ...interface{})                    {}
func (m *mockLogger) Fatalf(template string, args ...interface{})  {}
func (m *mockLogger) Benchmark(functionName string, duration time.Duration) {
}
func (m *mockLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
}
func (m *mockLogger) Sync() error { return nil }

type normalizerCase struct {
	name     string
	input    string
	expected string
}

func runCases(t *testing.T, normalizer Normalizer, tests []normalizerCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.input))
		})
	}
}

// =============================================================================
// Cleanup Normalizer Tests
// =============================================================================

func TestUnicodeNormalizer(t *testing.T) {
	runCases(t, NewUnicodeNormalizer(newMockLogger()), []normalizerCase{
		{"combining acute", "a\u0301", "\u00e1"},
		{"stacked marks", "Vie\u0302\u0323t", "Vi\u1ec7t"},
		{"already composed", "Việt Nam", "Việt Nam"},
		{"empty string", "", ""},
	})
}

func TestSymbolNormalizer(t *testing.T) {
	runCases(t, NewSymbolNormalizer(newMockLogger()), []normalizerCase{
		{"ampersand", "Tom & Jerry", "Tom  và  Jerry"},
		{"hash", "#1", " thăng 1"},
		{"url removed", "xem https://example.com nhé", "xem  nhé"},
		{"www removed", "vào www.example.vn", "vào "},
		{"email removed", "mail a@b.com", "mail "},
		{"dropped symbols", "a*b~c^d`e", "abcde"},
		{"underscore", "snake_case", "snake case"},
		{"no symbols", "xin chào", "xin chào"},
	})
}

func TestPunctuationNormalizer(t *testing.T) {
	runCases(t, NewPunctuationNormalizer(newMockLogger()), []normalizerCase{
		{"curly double quotes", "“Xin chào”", `"Xin chào"`},
		{"curly single quotes", "‘a’", "'a'"},
		{"many dots", "Chờ chút.....", "Chờ chút..."},
		{"ellipsis character", "Chờ chút…", "Chờ chút..."},
		{"repeated exclamation", "Thật sao!!!", "Thật sao!"},
		{"mixed marks", "Gì?!?", "Gì?"},
		{"double dot", "Hết..", "Hết."},
		{"single dot kept", "A. B", "A. B"},
	})
}

func TestCleanupNormalizer(t *testing.T) {
	runCases(t, NewCleanupNormalizer(newMockLogger()), []normalizerCase{
		{"brackets and quotes", `Anh (ấy) nói "không"`, "Anh ấy nói không"},
		{"dash after space is a pause", "Hà Nội — thủ đô", "Hà Nội. thủ đô"},
		{"dash before space is a pause", "Hà Nội— thủ đô", "Hà Nội. thủ đô"},
		{"en dash before space is a pause", "Hà Nội– thủ đô", "Hà Nội. thủ đô"},
		{"hyphen between digits kept", "12-2023", "12-2023"},
		{"en dash between years", "1873–1907", "1873-1907"},
		{"lone hyphen", "xin - chào", "xin   chào"},
		{"minus before digit kept", "-5 độ", "-5 độ"},
		{"emoji removed", "Vui 😀 quá", "Vui  quá"},
		{"out of range symbol", "Giá 5€", "Giá 5"},
		{"trimmed", "  Việt Nam  ", "Việt Nam"},
		{"degree sign kept", "25°C", "25°C"},
	})
}

// =============================================================================
// Range Normalizer Tests
// =============================================================================

func TestYearRangeNormalizer(t *testing.T) {
	runCases(t, NewYearRangeNormalizer(newMockLogger()), []normalizerCase{
		{"hyphen", "1873-1907", "một nghìn tám trăm bảy mươi ba đến một nghìn chín trăm lẻ bảy"},
		{"spaced en dash", "2020 – 2022", "hai nghìn không trăm hai mươi đến hai nghìn không trăm hai mươi hai"},
		{"short numbers ignored", "12-2023", "12-2023"},
	})
}

func TestPercentageRangeNormalizer(t *testing.T) {
	runCases(t, NewPercentageRangeNormalizer(newMockLogger()), []normalizerCase{
		{"simple", "3-5%", "ba đến năm phần trăm"},
		{"spaced", "10 - 20 %", "mười đến hai mươi phần trăm"},
		{"no percent", "3-5", "3-5"},
	})
}

// =============================================================================
// Date Normalizer Tests
// =============================================================================

func TestDateNormalizer(t *testing.T) {
	runCases(t, NewDateNormalizer(newMockLogger()), []normalizerCase{
		{"full date", "25/12/2023", "ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"full date with prefix", "Hôm nay là ngày 25/12/2023", "Hôm nay là ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"full date with sentence initial prefix", "Ngày 25/12/2023 là lễ", "ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba là lễ"},
		{"leading zero month", "15/08/1990", "ngày mười lăm tháng tám năm một nghìn chín trăm chín mươi"},
		{"invalid date untouched", "32/13/2023", "32/13/2023"},
		{"birth date", "Sinh ngày 02/09/1945", "Sinh ngày hai tháng chín năm một nghìn chín trăm bốn mươi lăm"},
		{"day range with prefix", "ngày 15-20/8", "ngày mười lăm đến hai mươi tháng tám"},
		{"day range with year", "10-12/3/2024", "mười đến mười hai tháng ba năm hai nghìn không trăm hai mươi bốn"},
		{"month range", "3-5/2023", "tháng ba đến tháng năm năm hai nghìn không trăm hai mươi ba"},
		{"month and year", "12-2023", "tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"month and year with prefix", "tháng 12/2023", "tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"day and month", "30/4", "ba mươi tháng bốn"},
		{"day and month inside a longer number run", "12/2023/5", "12/2023/5"},
		{"day and month after a digit", "130/4", "130/4"},
		{"x tháng y", "5 tháng 3", "ngày năm tháng ba"},
		{"tháng x", "tháng 7", "tháng bảy"},
		{"invalid month", "tháng 13", "tháng 13"},
		{"ngày x", "ngày 9", "ngày chín"},
		{"invalid day", "ngày 40", "ngày 40"},
		{"no date", "Xin chào", "Xin chào"},
	})
}

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("31", "12", ""))
	assert.True(t, validDate("1", "1", "1000"))
	assert.False(t, validDate("0", "1", ""))
	assert.False(t, validDate("1", "13", ""))
	assert.False(t, validDate("1", "1", "999"))
	assert.False(t, validDate("x", "1", ""))
}

// =============================================================================
// Time Normalizer Tests
// =============================================================================

func TestTimeNormalizer(t *testing.T) {
	runCases(t, NewTimeNormalizer(newMockLogger()), []normalizerCase{
		{"hour and minute", "14:30", "mười bốn giờ ba mươi phút"},
		{"with seconds", "08:05:09", "tám giờ năm phút chín giây"},
		{"invalid hour", "25:00", "25:00"},
		{"compact", "10h30", "mười giờ ba mươi"},
		{"hour mark", "8h sáng", "tám giờ sáng"},
		{"invalid hour mark", "24h", "24h"},
		{"giờ phút", "7 giờ 15 phút", "bảy giờ mười lăm phút"},
		{"giờ", "9 giờ tối", "chín giờ tối"},
		{"h before a letter", "3hộp", "3hộp"},
		{"no time", "Xin chào", "Xin chào"},
	})
}

// =============================================================================
// Ordinal Normalizer Tests
// =============================================================================

func TestOrdinalNormalizer(t *testing.T) {
	runCases(t, NewOrdinalNormalizer(newMockLogger()), []normalizerCase{
		{"thứ hai", "thứ 2", "thứ hai"},
		{"lần tư", "lần 4", "lần tư"},
		{"first keeps case", "Thứ 1", "Thứ nhất"},
		{"above ten", "chương 12", "chương mười hai"},
		{"no space", "số10", "số mười"},
		{"no number", "thứ hai", "thứ hai"},
	})
}

// =============================================================================
// Number Normalizer Tests
// =============================================================================

func TestThousandNormalizer(t *testing.T) {
	runCases(t, NewThousandNormalizer(newMockLogger()), []normalizerCase{
		{"millions", "1.500.000 đồng", "1500000 đồng"},
		{"end of sentence", "giá 20.000.", "giá 20000."},
		{"before unit", "20.000đ", "20000đ"},
		{"short fraction", "1.5", "1.5"},
		{"long fraction", "1.2345", "1.2345"},
	})
}

func TestCurrencyNormalizer(t *testing.T) {
	runCases(t, NewCurrencyNormalizer(newMockLogger()), []normalizerCase{
		{"đồng", "1500000 đồng", "một triệu năm trăm nghìn đồng"},
		{"short đ", "20000đ", "hai mươi nghìn đồng"},
		{"VND with comma", "1,500 VND", "một nghìn năm trăm đồng"},
		{"leading dollar", "$100", "một trăm đô la"},
		{"USD", "50 USD", "năm mươi đô la"},
		{"đ inside a word", "đẹp", "đẹp"},
		{"no currency", "Hello world", "Hello world"},
	})
}

func TestPercentageNormalizer(t *testing.T) {
	runCases(t, NewPercentageNormalizer(newMockLogger()), []normalizerCase{
		{"whole", "Tăng 25%", "Tăng hai mươi lăm phần trăm"},
		{"decimal", "3,25%", "ba phẩy hai mươi lăm phần trăm"},
		{"leading zero fraction", "0,05%", "không phẩy năm phần trăm"},
	})
}

func TestPhoneNormalizer(t *testing.T) {
	runCases(t, NewPhoneNormalizer(newMockLogger()), []normalizerCase{
		{"domestic", "Gọi 0912345678", "Gọi không chín một hai ba bốn năm sáu bảy tám"},
		{"international", "+84912345678", "tám bốn chín một hai ba bốn năm sáu bảy tám"},
		{"too short", "091234", "091234"},
	})
}

func TestDecimalNormalizer(t *testing.T) {
	runCases(t, NewDecimalNormalizer(newMockLogger()), []normalizerCase{
		{"decimal", "7,27", "bảy phẩy hai mươi bảy"},
		{"leading zero fraction", "3,05", "ba phẩy năm"},
		{"no decimal", "7", "7"},
	})
}

func TestUnitNormalizer(t *testing.T) {
	runCases(t, NewUnitNormalizer(newMockLogger()), []normalizerCase{
		{"kilometre", "5km", "5 ki-lô-mét"},
		{"celsius", "25°C", "25 độ C"},
		{"square metre", "100m2", "100 mét vuông"},
		{"speed", "60 km/h", "60 ki-lô-mét trên giờ"},
		{"kilogram before dot", "2kg.", "2 ki-lô-gam."},
		{"single letter before word", "5 m dài", "5 m dài"},
		{"not a unit", "3 mèo", "3 mèo"},
	})
}

func TestUnitPatternsLongestFirst(t *testing.T) {
	assert.Equal(t, len(units), len(unitPatterns))
	assert.Equal(t, "inch", unitPatterns[0].symbol)
	for i := 1; i < len(unitPatterns); i++ {
		prev, cur := []rune(unitPatterns[i-1].symbol), []rune(unitPatterns[i].symbol)
		assert.GreaterOrEqual(t, len(prev), len(cur))
	}
}

func TestRomanNormalizer(t *testing.T) {
	runCases(t, NewRomanNormalizer(newMockLogger()), []normalizerCase{
		{"two", "Thế chiến II", "Thế chiến hai"},
		{"twenty one", "thế kỷ XXI", "thế kỷ hai mươi mốt"},
		{"subtractive", "XC", "chín mươi"},
		{"too large", "CC", "CC"},
		{"lower case", "ii", "ii"},
		{"single letter", "I", "I"},
	})
}

func TestRomanValue(t *testing.T) {
	assert.Equal(t, 4, romanValue("IV"))
	assert.Equal(t, 49, romanValue("XLIX"))
	assert.Equal(t, -1, romanValue("IM"))
	assert.Equal(t, -1, romanValue(""))
}

func TestNumberNormalizer(t *testing.T) {
	runCases(t, NewNumberNormalizer(newMockLogger()), []normalizerCase{
		{"plain", "123", "một trăm hai mươi ba"},
		{"negative", "-5 độ", "âm năm độ"},
		{"inside a code", "D19E", "D19E"},
		{"several", "1 và 2", "một và hai"},
	})
}

func TestWhitespaceNormalizer(t *testing.T) {
	runCases(t, NewWhitespaceNormalizer(newMockLogger()), []normalizerCase{
		{"collapse", "  a   b\t\nc ", "a b c"},
		{"empty", "", ""},
	})
}

// =============================================================================
// Pipeline Tests
// =============================================================================

func TestPipeline(t *testing.T) {
	runCases(t, NewPipeline(newMockLogger()), []normalizerCase{
		{"date", "25/12/2023", "ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba"},
		{"invalid date falls to numbers", "32/13/2023", "ba mươi hai/mười ba/hai nghìn không trăm hai mươi ba"},
		{"time", "14:30", "mười bốn giờ ba mươi phút"},
		{"currency with separators", "1.500.000 đồng", "một triệu năm trăm nghìn đồng"},
		{"percentage range", "3-5%", "ba đến năm phần trăm"},
		{"year range", "1873-1907", "một nghìn tám trăm bảy mươi ba đến một nghìn chín trăm lẻ bảy"},
		{"percentage and year", "Tăng 25% so với 2022", "Tăng hai mươi lăm phần trăm so với hai nghìn không trăm hai mươi hai"},
		{"unit and time", "Nhiệt độ 25°C lúc 8h sáng", "Nhiệt độ hai mươi lăm độ C lúc tám giờ sáng"},
		{"area", "100m2", "một trăm mét vuông"},
		{"roman", "Thế chiến II", "Thế chiến hai"},
		{"phone", "Gọi 0912345678", "Gọi không chín một hai ba bốn năm sáu bảy tám"},
		{"ampersand spacing collapsed", "Tom & Jerry", "Tom và Jerry"},
		{"empty", "", ""},
	})
}

func TestPipeline_Order(t *testing.T) {
	p := NewPipeline(newMockLogger())
	assert.Equal(t, []string{
		"unicode", "symbol", "punctuation", "cleanup",
		"year-range", "percentage-range", "date", "time", "ordinal",
		"thousand", "currency", "percentage", "phone", "decimal",
		"unit", "roman", "number", "whitespace",
	}, p.Names())
}

func TestPipeline_Idempotent(t *testing.T) {
	p := NewPipeline(newMockLogger())
	inputs := []string{
		"Hôm nay 25/12/2023 lúc 14:30, giá 1.500.000 đồng",
		"Tăng 3-5% trong chương 12",
		"Thế chiến II kết thúc năm 1945",
	}
	for _, input := range inputs {
		once := p.Normalize(input)
		assert.Equal(t, once, p.Normalize(once), input)
	}
	assert.Equal(t,
		"Hôm nay ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba lúc mười bốn giờ ba mươi phút, giá một triệu năm trăm nghìn đồng",
		p.Normalize(inputs[0]))
}

func TestPipeline_Subset(t *testing.T) {
	logger := newMockLogger()
	p := NewPipeline(logger)

	assert.Same(t, p, p.Subset(nil))
	assert.Equal(t, []string{"year-range", "date", "whitespace"}, p.Subset([]string{"date"}).Names())
	assert.Equal(t, []string{"thousand", "number", "whitespace"}, p.Subset([]string{" Number "}).Names())
	assert.Equal(t, []string{"whitespace"}, p.Subset([]string{"bogus"}).Names())
	assert.Len(t, logger.warnMessages, 1)

	dates := p.Subset([]string{"date"})
	assert.Equal(t, "ngày hai mươi lăm tháng mười hai năm hai nghìn không trăm hai mươi ba giá 100", dates.Normalize("25/12/2023  giá 100"))
}
