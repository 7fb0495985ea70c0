// Package nlq translates free-text query phrases into filter predicates.
//
// Parsing happens in two stages. Stage one maps lowercased tokens onto a
// fixed lexicon of tagged atoms (property triggers, comparator triggers,
// negation, numerals, noise). Stage two scans the atom stream left to
// right with a bounded lookahead window, combining atoms into filter
// clauses. The lexicon is an explicit declaration-ordered table so the
// parser's vocabulary stays auditable fragment by fragment.
package nlq

import (
	"strings"
	"unicode"

	"github.com/solset/stringlens/filter"
)

// atomKind tags the semantic role of a matched lexicon entry
type atomKind int

const (
	atomProperty atomKind = iota
	atomComparator
	atomNegation
	atomNumber
	atomChar
	atomNoise
	atomUnknown
)

// triggerClass identifies which property family a property atom names
type triggerClass int

const (
	triggerNone triggerClass = iota
	triggerPalindrome            // "palindrome", "palindromic"
	triggerWordUnit              // "word", "words"
	triggerLengthUnit            // "character(s)", "letter(s)", "long", "length"
	triggerUniqueMarker          // "unique", "distinct"
	triggerContains              // "contain(s)", "containing", "with"
)

// comparator describes a comparison trigger. bias adjusts the operand for
// strict phrasings: "more than N" means >= N+1, "fewer than N" means <= N-1.
type comparator struct {
	op   filter.Operator
	bias int
}

// atom is one recognized (or unrecognized) fragment of the phrase
type atom struct {
	kind          atomKind
	trigger       triggerClass
	cmp           comparator
	impliesLength bool // comparator that names the length property itself ("longer than")
	number        int
	char          rune
	fragment      string // original surface text, for warnings
	consumed      bool
}

// lexiconEntry binds a surface token sequence to an atom template.
// Entries are matched longest span first; ties break by declaration order.
type lexiconEntry struct {
	surface []string
	atom    atom
}

// lexicon is the fixed vocabulary of the query language. Constructed once
// at package init and never mutated.
var lexicon = []lexiconEntry{
	// Comparator triggers. Two-word forms come first so they win the
	// longest-span tie-break over their single-word components.
	{surface: []string{"longer", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 1}, impliesLength: true}},
	{surface: []string{"shorter", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, -1}, impliesLength: true}},
	{surface: []string{"more", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 1}}},
	{surface: []string{"greater", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 1}}},
	{surface: []string{"fewer", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, -1}}},
	{surface: []string{"less", "than"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, -1}}},
	{surface: []string{"at", "least"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 0}}},
	{surface: []string{"at", "most"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, 0}}},
	{surface: []string{"of", "length"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpEquals, 0}, impliesLength: true}},
	{surface: []string{"over"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 1}}},
	{surface: []string{"under"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, -1}}},
	{surface: []string{"minimum"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpGreaterOrEqual, 0}}},
	{surface: []string{"maximum"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpLessOrEqual, 0}}},
	{surface: []string{"exactly"}, atom: atom{kind: atomComparator, cmp: comparator{filter.OpEquals, 0}}},

	// Property triggers
	{surface: []string{"palindromic"}, atom: atom{kind: atomProperty, trigger: triggerPalindrome}},
	{surface: []string{"palindrome"}, atom: atom{kind: atomProperty, trigger: triggerPalindrome}},
	{surface: []string{"palindromes"}, atom: atom{kind: atomProperty, trigger: triggerPalindrome}},
	{surface: []string{"word"}, atom: atom{kind: atomProperty, trigger: triggerWordUnit}},
	{surface: []string{"words"}, atom: atom{kind: atomProperty, trigger: triggerWordUnit}},
	{surface: []string{"character"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"characters"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"letter"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"letters"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"long"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"length"}, atom: atom{kind: atomProperty, trigger: triggerLengthUnit}},
	{surface: []string{"unique"}, atom: atom{kind: atomProperty, trigger: triggerUniqueMarker}},
	{surface: []string{"distinct"}, atom: atom{kind: atomProperty, trigger: triggerUniqueMarker}},
	{surface: []string{"different"}, atom: atom{kind: atomProperty, trigger: triggerUniqueMarker}},
	{surface: []string{"containing"}, atom: atom{kind: atomProperty, trigger: triggerContains}},
	{surface: []string{"contains"}, atom: atom{kind: atomProperty, trigger: triggerContains}},
	{surface: []string{"contain"}, atom: atom{kind: atomProperty, trigger: triggerContains}},
	{surface: []string{"with"}, atom: atom{kind: atomProperty, trigger: triggerContains}},

	// Negation
	{surface: []string{"not"}, atom: atom{kind: atomNegation}},
	{surface: []string{"non"}, atom: atom{kind: atomNegation}},

	// Spelled-out cardinals zero through twenty. "single" is the phrasing
	// the word-count trigger documents ("single word strings").
	{surface: []string{"single"}, atom: atom{kind: atomNumber, number: 1}},
	{surface: []string{"zero"}, atom: atom{kind: atomNumber, number: 0}},
	{surface: []string{"one"}, atom: atom{kind: atomNumber, number: 1}},
	{surface: []string{"two"}, atom: atom{kind: atomNumber, number: 2}},
	{surface: []string{"three"}, atom: atom{kind: atomNumber, number: 3}},
	{surface: []string{"four"}, atom: atom{kind: atomNumber, number: 4}},
	{surface: []string{"five"}, atom: atom{kind: atomNumber, number: 5}},
	{surface: []string{"six"}, atom: atom{kind: atomNumber, number: 6}},
	{surface: []string{"seven"}, atom: atom{kind: atomNumber, number: 7}},
	{surface: []string{"eight"}, atom: atom{kind: atomNumber, number: 8}},
	{surface: []string{"nine"}, atom: atom{kind: atomNumber, number: 9}},
	{surface: []string{"ten"}, atom: atom{kind: atomNumber, number: 10}},
	{surface: []string{"eleven"}, atom: atom{kind: atomNumber, number: 11}},
	{surface: []string{"twelve"}, atom: atom{kind: atomNumber, number: 12}},
	{surface: []string{"thirteen"}, atom: atom{kind: atomNumber, number: 13}},
	{surface: []string{"fourteen"}, atom: atom{kind: atomNumber, number: 14}},
	{surface: []string{"fifteen"}, atom: atom{kind: atomNumber, number: 15}},
	{surface: []string{"sixteen"}, atom: atom{kind: atomNumber, number: 16}},
	{surface: []string{"seventeen"}, atom: atom{kind: atomNumber, number: 17}},
	{surface: []string{"eighteen"}, atom: atom{kind: atomNumber, number: 18}},
	{surface: []string{"nineteen"}, atom: atom{kind: atomNumber, number: 19}},
	{surface: []string{"twenty"}, atom: atom{kind: atomNumber, number: 20}},
}

// noiseWords are grammatical connectors consumed silently. They never
// produce clauses and never appear in parse warnings.
var noiseWords = map[string]bool{
	"a":      true,
	"all":    true,
	"an":     true,
	"any":    true,
	"are":    true,
	"every":  true,
	"find":   true,
	"get":    true,
	"give":   true,
	"has":    true,
	"have":   true,
	"having": true,
	"is":     true,
	"in":     true,
	"me":     true,
	"of":     true,
	"only":   true,
	"show":   true,
	"string": true,
	"strings": true,
	"that":   true,
	"the":    true,
	"them":   true,
	"those":  true,
	"which":  true,
}

// token is one fragment of the phrase after splitting
type token struct {
	text   string // lowercased
	raw    string // original surface form
	quoted bool
}

// tokenize splits a phrase on whitespace and punctuation boundaries,
// lower-casing for lexicon matching. Quoted segments become single tokens
// so punctuation can be queried as a contained character. This is the one
// place case-folding happens; record values are never folded.
func tokenize(phrase string) []token {
	var tokens []token
	runes := []rune(phrase)

	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case r == '\'' || r == '"':
			quote := r
			j := i + 1
			for j < len(runes) && runes[j] != quote {
				j++
			}
			if j < len(runes) {
				inner := string(runes[i+1 : j])
				tokens = append(tokens, token{text: strings.ToLower(inner), raw: inner, quoted: true})
				i = j + 1
				continue
			}
			// Unterminated quote: treat the quote mark as a separator
			i++

		case unicode.IsLetter(r) || unicode.IsDigit(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j])) {
				j++
			}
			word := string(runes[i:j])
			tokens = append(tokens, token{text: strings.ToLower(word), raw: word})
			i = j

		default:
			// Whitespace and punctuation are boundaries
			i++
		}
	}

	return tokens
}

// TokenCount reports how many tokens a phrase splits into, using the same
// tokenizer Parse uses. Callers enforcing phrase length limits measure in
// tokens so quoting and punctuation do not distort the count.
func TokenCount(phrase string) int {
	return len(tokenize(phrase))
}

// classify performs stage one: tokens to atoms. At each position the
// longest matching lexicon span wins; equal spans resolve by declaration
// order. Unmatched tokens become atomUnknown (single characters become
// atomChar so they can serve as contains operands).
func classify(tokens []token) []atom {
	var atoms []atom

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		// Quoted fragments bypass the lexicon entirely
		if tok.quoted {
			atoms = append(atoms, charAtomFor(tok))
			i++
			continue
		}

		// Digit literals
		if n, ok := parseDigits(tok.text); ok {
			atoms = append(atoms, atom{kind: atomNumber, number: n, fragment: tok.raw})
			i++
			continue
		}

		if matched, span := matchLexicon(tokens, i); span > 0 {
			matched.fragment = joinRaw(tokens[i : i+span])
			atoms = append(atoms, matched)
			i += span
			continue
		}

		if noiseWords[tok.text] {
			atoms = append(atoms, atom{kind: atomNoise, fragment: tok.raw})
			i++
			continue
		}

		atoms = append(atoms, charAtomFor(tok))
		i++
	}

	return atoms
}

// maxSpan bounds the lookahead window for lexicon matching
const maxSpan = 4

// matchLexicon attempts the longest lexicon match starting at position i
func matchLexicon(tokens []token, i int) (atom, int) {
	remaining := len(tokens) - i
	limit := maxSpan
	if remaining < limit {
		limit = remaining
	}

	for span := limit; span >= 1; span-- {
		for _, entry := range lexicon {
			if len(entry.surface) != span {
				continue
			}
			if surfaceMatches(entry.surface, tokens, i) {
				return entry.atom, span
			}
		}
	}
	return atom{}, 0
}

func surfaceMatches(surface []string, tokens []token, i int) bool {
	for k, word := range surface {
		if tokens[i+k].quoted || tokens[i+k].text != word {
			return false
		}
	}
	return true
}

// charAtomFor classifies a token outside the lexicon: a single character
// can serve as a contains operand, anything longer is unknown. The
// character keeps its original case; only lexicon matching case-folds.
func charAtomFor(tok token) atom {
	runes := []rune(tok.raw)
	if len(runes) == 1 {
		return atom{kind: atomChar, char: runes[0], fragment: tok.raw}
	}
	return atom{kind: atomUnknown, fragment: tok.raw}
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 0, false
		}
	}
	return n, true
}

func joinRaw(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.raw
	}
	return strings.Join(parts, " ")
}
