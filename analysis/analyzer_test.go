package analysis

import (
	"testing"
)

func TestAnalyzeDeterminism(t *testing.T) {
	inputs := []string{"", "a", "hello world", "racecar", "héllo wörld", "  spaced  out  "}
	for _, s := range inputs {
		first := Analyze(s)
		second := Analyze(s)

		if first.Length != second.Length {
			t.Errorf("Analyze(%q) length differs between calls: %d vs %d", s, first.Length, second.Length)
		}
		if first.IsPalindrome != second.IsPalindrome {
			t.Errorf("Analyze(%q) is_palindrome differs between calls", s)
		}
		if first.UniqueCharacters != second.UniqueCharacters {
			t.Errorf("Analyze(%q) unique_characters differs between calls", s)
		}
		if first.WordCount != second.WordCount {
			t.Errorf("Analyze(%q) word_count differs between calls", s)
		}
		if first.ContentHash != second.ContentHash {
			t.Errorf("Analyze(%q) content_hash differs between calls: %s vs %s", s, first.ContentHash, second.ContentHash)
		}
	}
}

func TestPalindrome(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"abcba", true},
		{"racecar", true},
		{"race a car", false},
		// Case-sensitive: 'R' != 'r'
		{"Racecar", false},
		// Spaces count: "ab a" reversed is "a ba"
		{"ab a", false},
		{"a b a", true},
		// Multi-byte characters compare by code point
		{"éé", true},
		{"éa", false},
	}

	for _, tc := range cases {
		if got := Analyze(tc.value).IsPalindrome; got != tc.want {
			t.Errorf("Analyze(%q).IsPalindrome = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestFrequencyMapTotals(t *testing.T) {
	inputs := []string{"", "a", "hello world", "aabbcc", "héllo", "tab\tand\nnewline"}
	for _, s := range inputs {
		rec := Analyze(s)

		sum := 0
		for _, count := range rec.CharacterFrequency {
			sum += count
		}
		if sum != rec.Length {
			t.Errorf("Analyze(%q): frequency sum %d != length %d", s, sum, rec.Length)
		}
		if len(rec.CharacterFrequency) != rec.UniqueCharacters {
			t.Errorf("Analyze(%q): %d frequency keys != unique_characters %d",
				s, len(rec.CharacterFrequency), rec.UniqueCharacters)
		}
	}
}

func TestFrequencyMapCounts(t *testing.T) {
	rec := Analyze("hello world")

	want := map[string]int{
		"h": 1, "e": 1, "l": 3, "o": 2, " ": 1, "w": 1, "r": 1, "d": 1,
	}
	if len(rec.CharacterFrequency) != len(want) {
		t.Fatalf("frequency map has %d keys, want %d", len(rec.CharacterFrequency), len(want))
	}
	for ch, count := range want {
		if rec.CharacterFrequency[ch] != count {
			t.Errorf("frequency[%q] = %d, want %d", ch, rec.CharacterFrequency[ch], count)
		}
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"hello world", 2},
		{"  leading and trailing  ", 3},
		{"tabs\tcount\ttoo", 3},
	}

	for _, tc := range cases {
		if got := Analyze(tc.value).WordCount; got != tc.want {
			t.Errorf("Analyze(%q).WordCount = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestContentHashKnownVectors(t *testing.T) {
	// Published SHA-256 test vectors; the hash must be stable byte-for-byte
	cases := []struct {
		value string
		want  string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tc := range cases {
		if got := ContentHash(tc.value); got != tc.want {
			t.Errorf("ContentHash(%q) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestContentHashUniqueness(t *testing.T) {
	inputs := []string{"", "a", "b", "ab", "ba", "hello", "hello ", " hello"}
	seen := make(map[string]string)
	for _, s := range inputs {
		hash := Analyze(s).ContentHash
		if len(hash) != 64 {
			t.Errorf("ContentHash(%q) length = %d, want 64 hex chars", s, len(hash))
		}
		if prev, ok := seen[hash]; ok {
			t.Errorf("hash collision between %q and %q", prev, s)
		}
		seen[hash] = s
	}
}

func TestUnicodeLength(t *testing.T) {
	// Length counts code points, not bytes
	rec := Analyze("héllo")
	if rec.Length != 5 {
		t.Errorf("Analyze(%q).Length = %d, want 5", "héllo", rec.Length)
	}
	if rec.CharacterFrequency["é"] != 1 {
		t.Errorf("frequency[é] = %d, want 1", rec.CharacterFrequency["é"])
	}
}
