package nlq

import (
	"fmt"
	"strings"

	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/filter"
)

// Result is a successful parse: a predicate plus warnings for any
// fragments the parser recognized as present but could not interpret.
// Warnings never accompany an error; a phrase either yields at least one
// clause (possibly with warnings) or fails entirely.
type Result struct {
	Predicate filter.Predicate `json:"predicate"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// UnparsablePhraseError reports a phrase that produced zero clauses.
// Fragments lists the parts of the phrase the parser could not interpret.
type UnparsablePhraseError struct {
	Phrase    string
	Fragments []string
}

func (e *UnparsablePhraseError) Error() string {
	return fmt.Sprintf("unable to interpret phrase %q", e.Phrase)
}

// IsUnparsable reports whether err is an UnparsablePhraseError
func IsUnparsable(err error) bool {
	var upe *UnparsablePhraseError
	return errors.As(err, &upe)
}

// lookahead bounds how far the combiner scans past an anchor atom when
// assembling a clause
const lookahead = 4

// Parse interprets a natural-language phrase as a conjunction of filter
// clauses. Recognition degrades gracefully: fragments outside the lexicon
// are reported as warnings rather than failing the parse, as long as at
// least one clause survives. A phrase yielding no clauses at all returns
// an UnparsablePhraseError.
//
// Parse is a pure function of its input. The same phrase always produces
// the same predicate.
func Parse(phrase string) (*Result, error) {
	tokens := tokenize(phrase)
	if len(tokens) == 0 {
		return nil, &UnparsablePhraseError{Phrase: phrase}
	}

	atoms := classify(tokens)
	clauses, warnings := combine(atoms)

	if len(clauses) == 0 {
		fragments := unconsumedFragments(atoms)
		if len(fragments) == 0 {
			fragments = []string{strings.TrimSpace(phrase)}
		}
		return nil, &UnparsablePhraseError{Phrase: phrase, Fragments: fragments}
	}

	for _, frag := range unconsumedFragments(atoms) {
		warnings = append(warnings, fmt.Sprintf("unrecognized fragment %q", frag))
	}

	result := &Result{Warnings: warnings}
	for _, c := range clauses {
		result.Predicate = result.Predicate.Add(c)
	}
	return result, nil
}

// combine is stage two: walk the atom stream and assemble clauses. Each
// pattern anchors on one atom kind and claims its participants by marking
// them consumed, so a fragment contributes to at most one clause.
func combine(atoms []atom) ([]filter.Clause, []string) {
	var clauses []filter.Clause
	var warnings []string

	emit := func(c filter.Clause, err error) {
		if err != nil {
			warnings = append(warnings, err.Error())
			return
		}
		clauses = append(clauses, c)
	}

	for i := range atoms {
		a := &atoms[i]
		if a.consumed || a.kind == atomNoise {
			continue
		}

		switch a.kind {
		case atomNegation:
			if j := nextSignificant(atoms, i+1); j >= 0 && atoms[j].trigger == triggerPalindrome {
				a.consumed = true
				atoms[j].consumed = true
				emit(filter.NewClause(filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(false)))
			}

		case atomProperty:
			switch a.trigger {
			case triggerPalindrome:
				a.consumed = true
				emit(filter.NewClause(filter.PropertyIsPalindrome, filter.OpEquals, filter.BoolOperand(true)))

			case triggerContains:
				combineContains(atoms, i, emit)

			case triggerLengthUnit, triggerWordUnit:
				// Unit-first phrasing: "length of five", "word count of two"
				if j := nextSignificant(atoms, i+1); j >= 0 && atoms[j].kind == atomNumber {
					prop := filter.PropertyLength
					if a.trigger == triggerWordUnit {
						prop = filter.PropertyWordCount
					}
					a.consumed = true
					atoms[j].consumed = true
					emit(filter.NewClause(prop, filter.OpEquals, filter.IntOperand(atoms[j].number)))
				}
			}

		case atomComparator:
			combineComparison(atoms, i, emit)

		case atomNumber:
			combineBareNumber(atoms, i, emit)
		}
	}

	return clauses, warnings
}

// combineComparison handles "<comparator> <number> [<unit>]". The unit
// selects the property; comparators like "longer than" carry the length
// property themselves and need no unit.
func combineComparison(atoms []atom, i int, emit func(filter.Clause, error)) {
	a := &atoms[i]

	j := nextSignificant(atoms, i+1)
	if j < 0 || atoms[j].kind != atomNumber {
		return
	}

	operand := atoms[j].number + a.cmp.bias
	if operand < 0 {
		operand = 0
	}

	prop, unitIdx, extraIdx := resolveUnit(atoms, j+1)
	if prop == "" {
		if !a.impliesLength {
			return
		}
		prop = filter.PropertyLength
	}

	a.consumed = true
	atoms[j].consumed = true
	if unitIdx >= 0 {
		atoms[unitIdx].consumed = true
	}
	if extraIdx >= 0 {
		atoms[extraIdx].consumed = true
	}

	emit(filter.NewClause(prop, a.cmp.op, filter.IntOperand(operand)))
}

// combineBareNumber handles "<number> <unit>" with no comparator, which
// reads as equality: "single word strings", "five characters long".
func combineBareNumber(atoms []atom, i int, emit func(filter.Clause, error)) {
	a := &atoms[i]

	// Adjacent numerals ("twenty five") are ambiguous; claim neither
	if j := nextSignificant(atoms, i+1); j >= 0 && atoms[j].kind == atomNumber {
		return
	}
	if j := prevSignificant(atoms, i-1); j >= 0 && atoms[j].kind == atomNumber {
		return
	}

	prop, unitIdx, extraIdx := resolveUnit(atoms, i+1)
	if prop == "" {
		return
	}

	a.consumed = true
	atoms[unitIdx].consumed = true
	if extraIdx >= 0 {
		atoms[extraIdx].consumed = true
	}

	// Trailing "long" in "five characters long"
	if prop == filter.PropertyLength {
		last := unitIdx
		if extraIdx > last {
			last = extraIdx
		}
		if k := nextSignificant(atoms, last+1); k >= 0 && atoms[k].trigger == triggerLengthUnit {
			atoms[k].consumed = true
		}
	}

	emit(filter.NewClause(prop, filter.OpEquals, filter.IntOperand(a.number)))
}

// combineContains handles "contains z", "containing the letter x",
// "with 'q'", and a lone digit ("containing 5"). Introducer words between
// the trigger and the character ("letter", "character") are claimed along
// with it. A bare "with" that
// finds no character is a generic preposition and drops out silently;
// explicit contain forms stay unconsumed so they surface as warnings.
func combineContains(atoms []atom, i int, emit func(filter.Clause, error)) {
	a := &atoms[i]
	isWith := strings.EqualFold(a.fragment, "with")

	claim := func(j int, char rune, introducers []int) {
		a.consumed = true
		atoms[j].consumed = true
		for _, k := range introducers {
			atoms[k].consumed = true
		}
		emit(filter.NewCharClause(string(char)))
	}

	var introducers []int
	for j := i + 1; j < len(atoms) && j <= i+lookahead; j++ {
		switch atoms[j].kind {
		case atomNoise:
			// Single-character noise words double as operands: in "the
			// letter a" the article vocabulary loses to the introducer.
			// A bare "with a" stays prepositional.
			if runes := []rune(atoms[j].fragment); len(runes) == 1 && (len(introducers) > 0 || !isWith) {
				claim(j, runes[0], introducers)
				return
			}
			continue
		case atomChar:
			claim(j, atoms[j].char, introducers)
			return
		case atomNumber:
			// After an explicit contain form a lone digit reads as a
			// character operand ("containing 5"), unless a unit binds it
			// ("containing 5 characters"). "with" stays prepositional so
			// "with a length of 5" keeps its numeric reading.
			if runes := []rune(atoms[j].fragment); len(runes) == 1 && !isWith {
				if prop, _, _ := resolveUnit(atoms, j+1); prop == "" {
					claim(j, runes[0], introducers)
					return
				}
			}
		case atomProperty:
			if atoms[j].trigger == triggerLengthUnit && !atoms[j].consumed {
				introducers = append(introducers, j)
				continue
			}
		}
		break
	}

	if isWith {
		a.kind = atomNoise
	}
}

// resolveUnit identifies the property named by the unit atoms starting at
// position from: "words" selects word count, "unique characters" selects
// unique characters, a bare length unit selects length. Returns the
// matched atom indexes so the caller can claim them, or "" when the next
// significant atom is not a unit.
func resolveUnit(atoms []atom, from int) (prop filter.Property, unitIdx, extraIdx int) {
	j := nextSignificant(atoms, from)
	if j < 0 || atoms[j].kind != atomProperty {
		return "", -1, -1
	}

	switch atoms[j].trigger {
	case triggerWordUnit:
		return filter.PropertyWordCount, j, -1
	case triggerLengthUnit:
		return filter.PropertyLength, j, -1
	case triggerUniqueMarker:
		if k := nextSignificant(atoms, j+1); k >= 0 && atoms[k].trigger == triggerLengthUnit {
			return filter.PropertyUniqueCharacters, j, k
		}
		return filter.PropertyUniqueCharacters, j, -1
	}
	return "", -1, -1
}

// nextSignificant returns the index of the next unconsumed non-noise atom
// within the lookahead window, or -1
func nextSignificant(atoms []atom, from int) int {
	for j := from; j < len(atoms) && j < from+lookahead; j++ {
		if atoms[j].consumed || atoms[j].kind == atomNoise {
			continue
		}
		return j
	}
	return -1
}

// prevSignificant is nextSignificant's backward counterpart
func prevSignificant(atoms []atom, from int) int {
	for j := from; j >= 0 && j > from-lookahead; j-- {
		if atoms[j].consumed || atoms[j].kind == atomNoise {
			continue
		}
		return j
	}
	return -1
}

func unconsumedFragments(atoms []atom) []string {
	var fragments []string
	for _, a := range atoms {
		if a.consumed || a.kind == atomNoise {
			continue
		}
		fragments = append(fragments, a.fragment)
	}
	return fragments
}
