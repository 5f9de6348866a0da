package search

import (
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want [][]string
	}{
		{"empty input", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"single word", "guide", [][]string{{"guide"}}},
		{"two words two groups", "install guide", [][]string{{"install"}, {"guide"}}},
		{"or alternatives", "foo|bar", [][]string{{"foo", "bar"}}},
		{"phrase and or group", `"hello world" foo|bar`, [][]string{{"hello world"}, {"foo", "bar"}}},
		{"phrase keeps interior whitespace", `"a  b"`, [][]string{{"a  b"}}},
		{"unterminated phrase runs to end", `"hello world`, [][]string{{"hello world"}}},
		{"empty phrase yields no group", `"" rest`, [][]string{{"rest"}}},
		{"empty alternatives dropped", "foo||bar", [][]string{{"foo", "bar"}}},
		{"all-empty token yields no group", "| abc", [][]string{{"abc"}}},
		{"alternatives trimmed inside phrase", `"foo | bar"`, [][]string{{"foo", "bar"}}},
		{"extra whitespace between tokens", "  foo   bar  ", [][]string{{"foo"}, {"bar"}}},
		{"cjk word", "中文 搜索", [][]string{{"中文"}, {"搜索"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := ParseQuery(tt.raw)
			got := alternativesOf(groups)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseQueryLowersForMatching(t *testing.T) {
	groups := ParseQuery(`"Hello World" FOO|Bar`)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Alternatives[0] != "Hello World" {
		t.Errorf("display casing lost: %q", groups[0].Alternatives[0])
	}
	if groups[0].Lowered[0] != "hello world" {
		t.Errorf("lowered projection wrong: %q", groups[0].Lowered[0])
	}
	if !reflect.DeepEqual(groups[1].Lowered, []string{"foo", "bar"}) {
		t.Errorf("lowered alternatives wrong: %v", groups[1].Lowered)
	}
}

func alternativesOf(groups []Group) [][]string {
	if len(groups) == 0 {
		return nil
	}
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.Alternatives
	}
	return out
}
