// Package analysis computes structural properties of text strings.
// Analyze is a total, deterministic function: the same value always
// produces the same properties, and the SHA-256 content hash serves
// as the record's storage identity.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// PropertyRecord holds the computed attributes of one string.
// It is immutable once created; everything except CreatedAt is a pure
// function of Value.
type PropertyRecord struct {
	Value              string         `db:"value" json:"value"`                             // Original text, exactly as submitted
	Length             int            `db:"length" json:"length"`                           // Unicode code points in Value
	IsPalindrome       bool           `db:"is_palindrome" json:"is_palindrome"`             // Exact-character reverse equality
	UniqueCharacters   int            `db:"unique_characters" json:"unique_characters"`     // Distinct code points
	WordCount          int            `db:"word_count" json:"word_count"`                   // Whitespace-delimited non-empty tokens
	CharacterFrequency map[string]int `db:"character_frequency" json:"character_frequency"` // Every character -> occurrence count
	ContentHash        string         `db:"content_hash" json:"content_hash"`               // Hex SHA-256 of UTF-8 bytes; storage identity
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`                   // Stamped once at analysis time
}

// Analyze computes the property record for value. Total over all inputs,
// including the empty string; no error conditions.
func Analyze(value string) PropertyRecord {
	freq := characterFrequency(value)

	return PropertyRecord{
		Value:              value,
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		CharacterFrequency: freq,
		ContentHash:        ContentHash(value),
		CreatedAt:          time.Now().UTC(),
	}
}

// ContentHash returns the hex-encoded SHA-256 digest of the UTF-8 bytes
// of value. Stable across platforms and runs.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether value reads identically forwards and
// backwards, compared case-sensitively and including every character.
// Empty and single-character strings are palindromes.
func isPalindrome(value string) bool {
	runes := []rune(value)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// characterFrequency counts occurrences of every character in value,
// whitespace and punctuation included. Keys are single-character strings
// so the map serializes as a plain JSON object.
func characterFrequency(value string) map[string]int {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}
	return freq
}
