package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClauseValidCombinations(t *testing.T) {
	cases := []struct {
		name     string
		property Property
		op       Operator
		operand  Operand
	}{
		{"length equals", PropertyLength, OpEquals, IntOperand(5)},
		{"length gte", PropertyLength, OpGreaterOrEqual, IntOperand(0)},
		{"length lte", PropertyLength, OpLessOrEqual, IntOperand(100)},
		{"palindrome equals true", PropertyIsPalindrome, OpEquals, BoolOperand(true)},
		{"palindrome equals false", PropertyIsPalindrome, OpEquals, BoolOperand(false)},
		{"unique gte", PropertyUniqueCharacters, OpGreaterOrEqual, IntOperand(3)},
		{"word count equals", PropertyWordCount, OpEquals, IntOperand(1)},
		{"contains char", PropertyContainsCharacter, OpContains, CharOperand('z')},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clause, err := NewClause(tc.property, tc.op, tc.operand)
			require.NoError(t, err)
			assert.Equal(t, tc.property, clause.Property)
			assert.Equal(t, tc.op, clause.Op)
		})
	}
}

func TestNewClauseRejectsInvalidCombinations(t *testing.T) {
	cases := []struct {
		name      string
		property  Property
		op        Operator
		operand   Operand
		wantField string
	}{
		{"unknown property", Property("entropy"), OpEquals, IntOperand(1), "property"},
		{"length contains char", PropertyLength, OpContains, CharOperand('a'), "operator"},
		{"palindrome gte", PropertyIsPalindrome, OpGreaterOrEqual, BoolOperand(true), "operator"},
		{"contains with equals", PropertyContainsCharacter, OpEquals, CharOperand('a'), "operator"},
		{"length with bool operand", PropertyLength, OpEquals, BoolOperand(true), "operand"},
		{"palindrome with int operand", PropertyIsPalindrome, OpEquals, IntOperand(1), "operand"},
		{"negative length", PropertyLength, OpGreaterOrEqual, IntOperand(-1), "operand"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClause(tc.property, tc.op, tc.operand)
			require.Error(t, err)

			var invalidErr *InvalidPredicateError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tc.wantField, invalidErr.Field)
		})
	}
}

func TestNewCharClause(t *testing.T) {
	clause, err := NewCharClause("z")
	require.NoError(t, err)
	assert.Equal(t, PropertyContainsCharacter, clause.Property)
	assert.Equal(t, 'z', clause.Operand.Char)

	// Multi-byte single characters are fine
	clause, err = NewCharClause("é")
	require.NoError(t, err)
	assert.Equal(t, 'é', clause.Operand.Char)

	// Multiple characters are not
	_, err = NewCharClause("ab")
	var invalidErr *InvalidPredicateError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "operand", invalidErr.Field)

	_, err = NewCharClause("")
	require.Error(t, err)
}

func TestOperandJSON(t *testing.T) {
	intClause, err := NewClause(PropertyLength, OpGreaterOrEqual, IntOperand(6))
	require.NoError(t, err)
	boolClause, err := NewClause(PropertyIsPalindrome, OpEquals, BoolOperand(true))
	require.NoError(t, err)
	charClause, err := NewCharClause("x")
	require.NoError(t, err)

	pred := Predicate{Clauses: []Clause{intClause, boolClause, charClause}}
	raw, err := json.Marshal(pred)
	require.NoError(t, err)

	// Operands serialize as their natural JSON types
	assert.JSONEq(t, `{"clauses":[
		{"property":"length","operator":"gte","operand":6},
		{"property":"is_palindrome","operator":"eq","operand":true},
		{"property":"contains_character","operator":"contains","operand":"x"}
	]}`, string(raw))
}

func TestFromParams(t *testing.T) {
	isPalindrome := true
	minLength := 3
	maxLength := 10
	wordCount := 2
	containsChar := "e"

	pred, err := FromParams(Params{
		IsPalindrome:      &isPalindrome,
		MinLength:         &minLength,
		MaxLength:         &maxLength,
		WordCount:         &wordCount,
		ContainsCharacter: &containsChar,
	})
	require.NoError(t, err)
	assert.Len(t, pred.Clauses, 5)
}

func TestFromParamsEmpty(t *testing.T) {
	pred, err := FromParams(Params{})
	require.NoError(t, err)
	assert.True(t, pred.IsEmpty())
}

func TestFromParamsInvalid(t *testing.T) {
	negative := -2
	_, err := FromParams(Params{MinLength: &negative})
	var invalidErr *InvalidPredicateError
	require.ErrorAs(t, err, &invalidErr)

	tooLong := "ab"
	_, err = FromParams(Params{ContainsCharacter: &tooLong})
	require.ErrorAs(t, err, &invalidErr)
}
