package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"hangul greeting", "안녕", "ko"},
		{"hiragana greeting", "こんにちは", "ja"},
		{"latin text", "hello", "en"},
		{"empty string", "", "en"},
		{"hangul sentence", "오늘 회의는 세 시에 시작합니다", "ko"},
		{"katakana", "カタカナ", "ja"},
		{"kanji only", "翻訳", "ja"},
		{"mixed kana and kanji", "これは日本語の文章です", "ja"},
		{"hangul jamo", "한", "ko"},
		{"numbers and punctuation", "12345 !?", "en"},
		{"korean outweighed by japanese still korean on tie", "안녕 こんにちは", "ja"},
		{"korean ties japanese", "안녕하세요 こんにちは", "ko"},
		{"korean with latin filler", "meeting 시작 at three", "ko"},
		{"japanese with latin filler", "meeting 開始 at three", "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text))
		})
	}
}

// Korean wins only when it is present and at least as frequent as Japanese.
func TestDetect_TieBreak(t *testing.T) {
	// 2 Hangul runes vs 2 Japanese runes: tie goes to Korean
	assert.Equal(t, "ko", Detect("안녕かな"))
	// 1 Hangul rune vs 2 Japanese runes: Japanese wins
	assert.Equal(t, "ja", Detect("안かな"))
}
