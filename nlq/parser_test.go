package nlq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solset/stringlens/filter"
)

func clause(t *testing.T, prop filter.Property, op filter.Operator, operand filter.Operand) filter.Clause {
	t.Helper()
	c, err := filter.NewClause(prop, op, operand)
	require.NoError(t, err)
	return c
}

func TestParseSingleWordPalindromes(t *testing.T) {
	result, err := Parse("all single word palindromic strings")
	require.NoError(t, err)

	expected := []filter.Clause{
		clause(t, filter.PropertyWordCount, filter.OpEquals, filter.IntOperand(1)),
		clause(t, filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(true)),
	}
	assert.Equal(t, expected, result.Predicate.Clauses)
	assert.Empty(t, result.Warnings)
}

func TestParseStrictComparison(t *testing.T) {
	// "longer than five" reads as >= 6
	result, err := Parse("strings longer than five characters")
	require.NoError(t, err)

	require.Len(t, result.Predicate.Clauses, 1)
	assert.Equal(t, clause(t, filter.PropertyLength, filter.OpGreaterOrEqual, filter.IntOperand(6)), result.Predicate.Clauses[0])
	assert.Empty(t, result.Warnings)
}

func TestParseUnparsablePhrase(t *testing.T) {
	result, err := Parse("xyzzy plugh")
	require.Error(t, err)
	assert.Nil(t, result)

	var upe *UnparsablePhraseError
	require.ErrorAs(t, err, &upe)
	assert.Equal(t, "xyzzy plugh", upe.Phrase)
	assert.Equal(t, []string{"xyzzy", "plugh"}, upe.Fragments)
	assert.True(t, IsUnparsable(err))
}

func TestParseGracefulDegradation(t *testing.T) {
	// The garble fragment is reported but does not fail the parse
	result, err := Parse("palindromic strings with unknown-garble-token")
	require.NoError(t, err)

	require.Len(t, result.Predicate.Clauses, 1)
	assert.Equal(t, clause(t, filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(true)), result.Predicate.Clauses[0])
	assert.NotEmpty(t, result.Warnings)
}

func TestParseComparators(t *testing.T) {
	tests := []struct {
		phrase string
		want   filter.Clause
	}{
		{"more than three words", mustClause(filter.PropertyWordCount, filter.OpGreaterOrEqual, filter.IntOperand(4))},
		{"greater than 10 characters", mustClause(filter.PropertyLength, filter.OpGreaterOrEqual, filter.IntOperand(11))},
		{"at least two words", mustClause(filter.PropertyWordCount, filter.OpGreaterOrEqual, filter.IntOperand(2))},
		{"at most seven characters", mustClause(filter.PropertyLength, filter.OpLessOrEqual, filter.IntOperand(7))},
		{"fewer than four unique characters", mustClause(filter.PropertyUniqueCharacters, filter.OpLessOrEqual, filter.IntOperand(3))},
		{"less than 3 words", mustClause(filter.PropertyWordCount, filter.OpLessOrEqual, filter.IntOperand(2))},
		{"under five letters", mustClause(filter.PropertyLength, filter.OpLessOrEqual, filter.IntOperand(4))},
		{"over two words", mustClause(filter.PropertyWordCount, filter.OpGreaterOrEqual, filter.IntOperand(3))},
		{"exactly ten characters", mustClause(filter.PropertyLength, filter.OpEquals, filter.IntOperand(10))},
		{"shorter than six characters", mustClause(filter.PropertyLength, filter.OpLessOrEqual, filter.IntOperand(5))},
		{"strings of length five", mustClause(filter.PropertyLength, filter.OpEquals, filter.IntOperand(5))},
		{"minimum three distinct characters", mustClause(filter.PropertyUniqueCharacters, filter.OpGreaterOrEqual, filter.IntOperand(3))},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			result, err := Parse(tt.phrase)
			require.NoError(t, err)
			require.Len(t, result.Predicate.Clauses, 1)
			assert.Equal(t, tt.want, result.Predicate.Clauses[0])
		})
	}
}

func TestParseBareNumberReadsAsEquality(t *testing.T) {
	tests := []struct {
		phrase string
		want   filter.Clause
	}{
		{"two word strings", mustClause(filter.PropertyWordCount, filter.OpEquals, filter.IntOperand(2))},
		{"five characters long", mustClause(filter.PropertyLength, filter.OpEquals, filter.IntOperand(5))},
		{"strings with 7 unique characters", mustClause(filter.PropertyUniqueCharacters, filter.OpEquals, filter.IntOperand(7))},
		{"single word strings", mustClause(filter.PropertyWordCount, filter.OpEquals, filter.IntOperand(1))},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			result, err := Parse(tt.phrase)
			require.NoError(t, err)
			require.Len(t, result.Predicate.Clauses, 1)
			assert.Equal(t, tt.want, result.Predicate.Clauses[0])
		})
	}
}

func TestParseContainsCharacter(t *testing.T) {
	tests := []struct {
		phrase string
		char   string
	}{
		{"strings containing the letter z", "z"},
		{"contains x", "x"},
		{"strings with 'q'", "q"},
		{"containing \"!\"", "!"},
		{"strings that contain the character e", "e"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			result, err := Parse(tt.phrase)
			require.NoError(t, err)
			require.Len(t, result.Predicate.Clauses, 1)

			want, err := filter.NewCharClause(tt.char)
			require.NoError(t, err)
			assert.Equal(t, want, result.Predicate.Clauses[0])
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestParseContainsBareDigit(t *testing.T) {
	t.Run("lone digit is a character operand", func(t *testing.T) {
		result, err := Parse("strings containing 5")
		require.NoError(t, err)
		require.Len(t, result.Predicate.Clauses, 1)

		want, err := filter.NewCharClause("5")
		require.NoError(t, err)
		assert.Equal(t, want, result.Predicate.Clauses[0])
		assert.Empty(t, result.Warnings)
	})

	t.Run("digit bound to a unit stays numeric", func(t *testing.T) {
		result, err := Parse("strings with 5 characters")
		require.NoError(t, err)
		require.Len(t, result.Predicate.Clauses, 1)
		assert.Equal(t, mustClause(filter.PropertyLength, filter.OpEquals, filter.IntOperand(5)), result.Predicate.Clauses[0])
		assert.Empty(t, result.Warnings)
	})

	t.Run("with stays prepositional around digits", func(t *testing.T) {
		result, err := Parse("strings with a length of 5")
		require.NoError(t, err)
		require.Len(t, result.Predicate.Clauses, 1)
		assert.Equal(t, mustClause(filter.PropertyLength, filter.OpEquals, filter.IntOperand(5)), result.Predicate.Clauses[0])
		assert.Empty(t, result.Warnings)
	})

	t.Run("multi-digit number is not a character", func(t *testing.T) {
		result, err := Parse("palindromic strings containing 42")
		require.NoError(t, err)
		require.Len(t, result.Predicate.Clauses, 1)
		assert.Equal(t, mustClause(filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(true)), result.Predicate.Clauses[0])
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestParseNegatedPalindrome(t *testing.T) {
	for _, phrase := range []string{"not palindromic strings", "non palindromic strings"} {
		t.Run(phrase, func(t *testing.T) {
			result, err := Parse(phrase)
			require.NoError(t, err)
			require.Len(t, result.Predicate.Clauses, 1)
			assert.Equal(t, mustClause(filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(false)), result.Predicate.Clauses[0])
		})
	}
}

func TestParseConjunction(t *testing.T) {
	result, err := Parse("palindromic strings longer than three characters containing the letter a")
	require.NoError(t, err)

	expected := []filter.Clause{
		mustClause(filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(true)),
		mustClause(filter.PropertyLength, filter.OpGreaterOrEqual, filter.IntOperand(4)),
		mustClause(filter.PropertyContainsCharacter, filter.OpContains, filter.CharOperand('a')),
	}
	assert.Equal(t, expected, result.Predicate.Clauses)
	assert.Empty(t, result.Warnings)
}

func TestParseDeterminism(t *testing.T) {
	phrase := "palindromic strings with more than two words"
	first, err := Parse(phrase)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Parse(phrase)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseEmptyPhrase(t *testing.T) {
	for _, phrase := range []string{"", "   ", "...!"} {
		result, err := Parse(phrase)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, IsUnparsable(err))
	}
}

func TestParseNoiseOnlyPhrase(t *testing.T) {
	result, err := Parse("all the strings")
	require.Error(t, err)
	assert.Nil(t, result)

	var upe *UnparsablePhraseError
	require.ErrorAs(t, err, &upe)
	assert.NotEmpty(t, upe.Fragments)
}

func TestParseAdjacentNumeralsStayUnclaimed(t *testing.T) {
	// "twenty five" is outside the numeral vocabulary and must not be
	// misread as two separate counts
	result, err := Parse("palindromes with twenty five characters")
	require.NoError(t, err)
	require.Len(t, result.Predicate.Clauses, 1)
	assert.Equal(t, filter.PropertyIsPalindrome, result.Predicate.Clauses[0].Property)
	assert.NotEmpty(t, result.Warnings)
}

func TestTokenCount(t *testing.T) {
	assert.Equal(t, 0, TokenCount("   "))
	assert.Equal(t, 2, TokenCount("palindromic strings"))
	// Quoted segments count as one token regardless of content
	assert.Equal(t, 2, TokenCount("containing 'a b'"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"five-character words", []string{"five", "character", "words"}},
		{"contains 'x'", []string{"contains", "x"}},
		{"", nil},
		{"  spaced   out  ", []string{"spaced", "out"}},
	}

	for _, tt := range tests {
		tokens := tokenize(tt.input)
		got := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			got = append(got, tok.text)
		}
		if len(tt.want) == 0 {
			assert.Empty(t, got, "input %q", tt.input)
			continue
		}
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func mustClause(prop filter.Property, op filter.Operator, operand filter.Operand) filter.Clause {
	c, err := filter.NewClause(prop, op, operand)
	if err != nil {
		panic(err)
	}
	return c
}
