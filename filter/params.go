package filter

// Params holds structured query parameters as supplied by the transport
// layer. Nil fields are absent; present fields each become one clause.
type Params struct {
	IsPalindrome      *bool
	Length            *int
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	MinWordCount      *int
	MaxWordCount      *int
	UniqueCharacters  *int
	MinUnique         *int
	MaxUnique         *int
	ContainsCharacter *string
}

// FromParams assembles a predicate from structured parameters without
// involving the natural-language parser. Each present parameter maps to
// exactly one clause; invalid values surface as *InvalidPredicateError.
func FromParams(params Params) (Predicate, error) {
	var predicate Predicate

	add := func(property Property, op Operator, operand Operand) error {
		clause, err := NewClause(property, op, operand)
		if err != nil {
			return err
		}
		predicate = predicate.Add(clause)
		return nil
	}

	if params.IsPalindrome != nil {
		if err := add(PropertyIsPalindrome, OpEquals, BoolOperand(*params.IsPalindrome)); err != nil {
			return Predicate{}, err
		}
	}
	if params.Length != nil {
		if err := add(PropertyLength, OpEquals, IntOperand(*params.Length)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MinLength != nil {
		if err := add(PropertyLength, OpGreaterOrEqual, IntOperand(*params.MinLength)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MaxLength != nil {
		if err := add(PropertyLength, OpLessOrEqual, IntOperand(*params.MaxLength)); err != nil {
			return Predicate{}, err
		}
	}
	if params.WordCount != nil {
		if err := add(PropertyWordCount, OpEquals, IntOperand(*params.WordCount)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MinWordCount != nil {
		if err := add(PropertyWordCount, OpGreaterOrEqual, IntOperand(*params.MinWordCount)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MaxWordCount != nil {
		if err := add(PropertyWordCount, OpLessOrEqual, IntOperand(*params.MaxWordCount)); err != nil {
			return Predicate{}, err
		}
	}
	if params.UniqueCharacters != nil {
		if err := add(PropertyUniqueCharacters, OpEquals, IntOperand(*params.UniqueCharacters)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MinUnique != nil {
		if err := add(PropertyUniqueCharacters, OpGreaterOrEqual, IntOperand(*params.MinUnique)); err != nil {
			return Predicate{}, err
		}
	}
	if params.MaxUnique != nil {
		if err := add(PropertyUniqueCharacters, OpLessOrEqual, IntOperand(*params.MaxUnique)); err != nil {
			return Predicate{}, err
		}
	}
	if params.ContainsCharacter != nil {
		clause, err := NewCharClause(*params.ContainsCharacter)
		if err != nil {
			return Predicate{}, err
		}
		predicate = predicate.Add(clause)
	}

	return predicate, nil
}
