// Package filter defines the predicate model used to select property
// records. A predicate is plain data: a conjunction of clauses, each
// binding one property to one comparison operator and one literal
// operand. Both the structured-parameter path and the natural-language
// parser produce the same predicate shape, and one evaluator consumes it.
package filter

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Property identifies a filterable attribute of a PropertyRecord
type Property string

const (
	PropertyLength            Property = "length"
	PropertyIsPalindrome      Property = "is_palindrome"
	PropertyUniqueCharacters  Property = "unique_characters"
	PropertyWordCount         Property = "word_count"
	PropertyContainsCharacter Property = "contains_character"
)

// Operator identifies a comparison applied between a property and an operand
type Operator string

const (
	OpEquals         Operator = "eq"
	OpGreaterOrEqual Operator = "gte"
	OpLessOrEqual    Operator = "lte"
	OpContains       Operator = "contains"
)

// OperandKind tags the literal type carried by an Operand
type OperandKind int

const (
	OperandInt OperandKind = iota
	OperandBool
	OperandChar
)

// Operand is a tagged literal value. Exactly one of the value fields is
// meaningful, selected by Kind.
type Operand struct {
	Kind OperandKind
	Int  int
	Bool bool
	Char rune
}

// IntOperand returns an integer operand
func IntOperand(n int) Operand { return Operand{Kind: OperandInt, Int: n} }

// BoolOperand returns a boolean operand
func BoolOperand(b bool) Operand { return Operand{Kind: OperandBool, Bool: b} }

// CharOperand returns a single-character operand
func CharOperand(r rune) Operand { return Operand{Kind: OperandChar, Char: r} }

// String returns the operand's literal value as text
func (o Operand) String() string {
	switch o.Kind {
	case OperandBool:
		return fmt.Sprintf("%t", o.Bool)
	case OperandChar:
		return string(o.Char)
	default:
		return fmt.Sprintf("%d", o.Int)
	}
}

// MarshalJSON emits the bare literal (number, boolean, or string) so
// predicates echo back to API clients in their natural JSON types.
func (o Operand) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case OperandBool:
		return json.Marshal(o.Bool)
	case OperandChar:
		return json.Marshal(string(o.Char))
	default:
		return json.Marshal(o.Int)
	}
}

// UnmarshalJSON parses the bare literal emitted by MarshalJSON back into
// a tagged operand: a boolean, an integer, or a single-character string.
func (o *Operand) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*o = BoolOperand(b)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*o = IntOperand(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("operand string must be exactly one character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		*o = CharOperand(r)
		return nil
	}
	return fmt.Errorf("operand must be a boolean, integer, or single-character string, got %s", data)
}

// Clause is one (property, operator, operand) test
type Clause struct {
	Property Property `json:"property"`
	Op       Operator `json:"operator"`
	Operand  Operand  `json:"operand"`
}

// Predicate is a conjunction of clauses. Clause order is irrelevant to
// evaluation; duplicate clauses on the same property all apply (narrowing,
// not overriding). An empty predicate matches every record.
type Predicate struct {
	Clauses []Clause `json:"clauses"`
}

// IsEmpty reports whether the predicate has no clauses
func (p Predicate) IsEmpty() bool {
	return len(p.Clauses) == 0
}

// Add appends a clause, returning the extended predicate
func (p Predicate) Add(c Clause) Predicate {
	p.Clauses = append(p.Clauses, c)
	return p
}

// InvalidPredicateError reports a clause construction outside the
// recognized property/operator/operand table. Field names the offending
// part of the clause ("property", "operator", or "operand").
type InvalidPredicateError struct {
	Field  string
	Detail string
}

func (e *InvalidPredicateError) Error() string {
	return fmt.Sprintf("invalid predicate: %s: %s", e.Field, e.Detail)
}

// operandTable is the closed set of recognized property/operator
// combinations and the operand kind each requires.
var operandTable = map[Property]map[Operator]OperandKind{
	PropertyLength: {
		OpEquals:         OperandInt,
		OpGreaterOrEqual: OperandInt,
		OpLessOrEqual:    OperandInt,
	},
	PropertyIsPalindrome: {
		OpEquals: OperandBool,
	},
	PropertyUniqueCharacters: {
		OpEquals:         OperandInt,
		OpGreaterOrEqual: OperandInt,
		OpLessOrEqual:    OperandInt,
	},
	PropertyWordCount: {
		OpEquals:         OperandInt,
		OpGreaterOrEqual: OperandInt,
		OpLessOrEqual:    OperandInt,
	},
	PropertyContainsCharacter: {
		OpContains: OperandChar,
	},
}

// NewClause validates and constructs a clause. Combinations outside the
// recognized table fail with *InvalidPredicateError.
func NewClause(property Property, op Operator, operand Operand) (Clause, error) {
	operators, ok := operandTable[property]
	if !ok {
		return Clause{}, &InvalidPredicateError{
			Field:  "property",
			Detail: fmt.Sprintf("unrecognized property %q", property),
		}
	}

	wantKind, ok := operators[op]
	if !ok {
		return Clause{}, &InvalidPredicateError{
			Field:  "operator",
			Detail: fmt.Sprintf("operator %q not supported for property %q", op, property),
		}
	}

	if operand.Kind != wantKind {
		return Clause{}, &InvalidPredicateError{
			Field:  "operand",
			Detail: fmt.Sprintf("property %q with operator %q requires %s operand, got %s", property, op, kindName(wantKind), kindName(operand.Kind)),
		}
	}

	if operand.Kind == OperandInt && operand.Int < 0 {
		return Clause{}, &InvalidPredicateError{
			Field:  "operand",
			Detail: fmt.Sprintf("property %q requires a non-negative integer, got %d", property, operand.Int),
		}
	}

	return Clause{Property: property, Op: op, Operand: operand}, nil
}

// NewCharClause builds a contains_character clause from a string literal,
// enforcing the single-character constraint.
func NewCharClause(ch string) (Clause, error) {
	if utf8.RuneCountInString(ch) != 1 {
		return Clause{}, &InvalidPredicateError{
			Field:  "operand",
			Detail: fmt.Sprintf("contains_character requires exactly one character, got %q", ch),
		}
	}
	r, _ := utf8.DecodeRuneInString(ch)
	return NewClause(PropertyContainsCharacter, OpContains, CharOperand(r))
}

func kindName(k OperandKind) string {
	switch k {
	case OperandBool:
		return "boolean"
	case OperandChar:
		return "character"
	default:
		return "integer"
	}
}
