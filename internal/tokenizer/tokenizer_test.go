package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple words", "hello world", []string{"hello", "world"}},
		{"uppercase folded", "Hello WORLD", []string{"hello", "world"}},
		{"punctuation as delimiter", "hello, world!", []string{"hello", "world"}},
		{"numbers kept", "item123 42", []string{"item123", "42"}},
		{"single char dropped", "a bc d ef", []string{"bc", "ef"}},
		{"duplicates collapsed", "go go go tooling go", []string{"go", "tooling"}},
		{"underscore splits", "my_variable_name", []string{"my", "variable", "name"}},
		{"hyphen splits", "state-of-the-art", []string{"state", "of", "the", "art"}},
		{"only symbols", "!@#$%^", []string{}},
		{"cjk run", "中文搜索 engine", []string{"中文搜索", "engine"}},
		{"single ideograph dropped", "中 文文", []string{"文文"}},
		{"hiragana", "ひらがな test", []string{"ひらがな", "test"}},
		{"hangul", "검색 엔진", []string{"검색", "엔진"}},
		{"cjk and ascii separated by symbol", "搜索/search", []string{"搜索", "search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIndexableASCII(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"plain word", "hello", true},
		{"digits", "2024", true},
		{"mixed alnum", "go124", true},
		{"too short", "a", false},
		{"empty", "", false},
		{"cjk", "搜索", false},
		{"embedded punctuation", "he-llo", false},
		{"embedded space", "he llo", false},
		{"minimum length boundary", "ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIndexableASCII(tt.token); got != tt.want {
				t.Errorf("IsIndexableASCII(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
