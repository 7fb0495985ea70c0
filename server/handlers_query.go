package server

import (
	"fmt"
	"net/http"

	"github.com/solset/stringlens/analysis"
	"github.com/solset/stringlens/filter"
	"github.com/solset/stringlens/nlq"
)

// interpretedQuery echoes back how a natural-language phrase was understood
type interpretedQuery struct {
	Original      string          `json:"original"`
	ParsedFilters []filter.Clause `json:"parsed_filters"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// nlFilterResponse is the envelope for natural-language filtered listings
type nlFilterResponse struct {
	Data             []analysis.PropertyRecord `json:"data"`
	Count            int                       `json:"count"`
	InterpretedQuery interpretedQuery          `json:"interpreted_query"`
}

// HandleNaturalLanguageFilter filters stored strings by a free-text phrase
// (GET /strings/filter-by-natural-language?query=...)
func (s *Server) HandleNaturalLanguageFilter(w http.ResponseWriter, r *http.Request) {
	phrase := r.URL.Query().Get("query")
	if phrase == "" {
		writeError(w, http.StatusBadRequest, "missing required query parameter: query")
		return
	}

	if s.cfg != nil && s.cfg.Query.MaxPhraseTokens > 0 {
		max := s.cfg.Query.MaxPhraseTokens
		if n := nlq.TokenCount(phrase); n > max {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("query phrase has %d tokens, limit is %d", n, max))
			return
		}
	}

	result, err := nlq.Parse(phrase)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	records, err := s.store.ListRecords()
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	matched := s.capResults(filter.Apply(records, result.Predicate))

	s.logger.Debugw("Natural language query",
		"phrase", phrase,
		"clauses", len(result.Predicate.Clauses),
		"warnings", len(result.Warnings),
		"matched", len(matched),
	)

	writeJSON(w, http.StatusOK, nlFilterResponse{
		Data:  matched,
		Count: len(matched),
		InterpretedQuery: interpretedQuery{
			Original:      phrase,
			ParsedFilters: result.Predicate.Clauses,
			Warnings:      result.Warnings,
		},
	})
}
