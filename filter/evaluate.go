package filter

import (
	"github.com/solset/stringlens/analysis"
)

// Matches reports whether every clause in the predicate holds for the
// record. An empty predicate matches every record.
func Matches(record analysis.PropertyRecord, predicate Predicate) bool {
	for _, clause := range predicate.Clauses {
		if !clauseMatches(record, clause) {
			return false
		}
	}
	return true
}

// Apply returns the subset of records matching the predicate, preserving
// relative order. Total: never fails for a predicate built through
// NewClause; returns the empty slice when nothing matches.
func Apply(records []analysis.PropertyRecord, predicate Predicate) []analysis.PropertyRecord {
	matched := make([]analysis.PropertyRecord, 0, len(records))
	for _, record := range records {
		if Matches(record, predicate) {
			matched = append(matched, record)
		}
	}
	return matched
}

func clauseMatches(record analysis.PropertyRecord, clause Clause) bool {
	switch clause.Property {
	case PropertyIsPalindrome:
		return record.IsPalindrome == clause.Operand.Bool
	case PropertyContainsCharacter:
		return record.CharacterFrequency[string(clause.Operand.Char)] > 0
	case PropertyLength:
		return compareInt(record.Length, clause.Op, clause.Operand.Int)
	case PropertyUniqueCharacters:
		return compareInt(record.UniqueCharacters, clause.Op, clause.Operand.Int)
	case PropertyWordCount:
		return compareInt(record.WordCount, clause.Op, clause.Operand.Int)
	default:
		// Unreachable for clauses built through NewClause
		return false
	}
}

func compareInt(value int, op Operator, operand int) bool {
	switch op {
	case OpEquals:
		return value == operand
	case OpGreaterOrEqual:
		return value >= operand
	case OpLessOrEqual:
		return value <= operand
	default:
		return false
	}
}
