package server

import (
	"net/http"
	"strconv"

	"github.com/solset/stringlens/analysis"
	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/filter"
	"github.com/solset/stringlens/version"
)

// createStringRequest is the POST /strings body
type createStringRequest struct {
	Value *string `json:"value"`
}

// listResponse is the envelope for filtered listings
type listResponse struct {
	Data           []analysis.PropertyRecord `json:"data"`
	Count          int                       `json:"count"`
	FiltersApplied map[string]string         `json:"filters_applied,omitempty"`
}

// HandleCreateString analyzes and stores a new string (POST /strings)
func (s *Server) HandleCreateString(w http.ResponseWriter, r *http.Request) {
	var req createStringRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "missing required field: value")
		return
	}

	record := analysis.Analyze(*req.Value)
	if err := s.store.CreateRecord(record); err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	s.logger.Infow("Stored string",
		"content_hash", record.ContentHash,
		"length", record.Length,
	)

	writeJSON(w, http.StatusCreated, record)
}

// HandleListStrings lists stored strings, optionally filtered by structured
// query parameters (GET /strings)
func (s *Server) HandleListStrings(w http.ResponseWriter, r *http.Request) {
	params, applied, err := parseFilterParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	predicate, err := filter.FromParams(params)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	records, err := s.store.ListRecords()
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	matched := s.capResults(filter.Apply(records, predicate))
	writeJSON(w, http.StatusOK, listResponse{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: applied,
	})
}

// capResults truncates a matched result set to the configured default
// limit. A zero limit returns everything.
func (s *Server) capResults(records []analysis.PropertyRecord) []analysis.PropertyRecord {
	if s.cfg == nil {
		return records
	}
	limit := s.cfg.Query.DefaultLimit
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[:limit]
}

// HandleGetString fetches one string by its exact value (GET /strings/{value})
func (s *Server) HandleGetString(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	record, err := s.store.GetByValue(value)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// HandleDeleteString removes one string by its exact value
// (DELETE /strings/{value})
func (s *Server) HandleDeleteString(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	record, err := s.store.GetByValue(value)
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	if err := s.store.DeleteByHash(record.ContentHash); err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	s.logger.Infow("Deleted string", "content_hash", record.ContentHash)
	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth serves the health check endpoint with version info
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	count, err := s.store.Count()
	if err != nil {
		writeDomainError(w, s.logger, err)
		return
	}

	health := map[string]interface{}{
		"status":         "ok",
		"version":        versionInfo.Version,
		"commit":         versionInfo.CommitHash,
		"build_time":     versionInfo.BuildTime,
		"stored_strings": count,
		"state":          stateString(s.getState()),
	}

	writeJSON(w, http.StatusOK, health)
}

// parseFilterParams reads structured filter query parameters. Returns the
// parsed params plus an echo map of what was applied, for the response.
func parseFilterParams(r *http.Request) (filter.Params, map[string]string, error) {
	var params filter.Params
	applied := map[string]string{}
	q := r.URL.Query()

	boolParam := func(name string, dest **bool) error {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.NewInvalidRequestError("invalid %s: %q", name, raw)
		}
		*dest = &v
		applied[name] = raw
		return nil
	}

	intParam := func(name string, dest **int) error {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errors.NewInvalidRequestError("invalid %s: %q", name, raw)
		}
		*dest = &v
		applied[name] = raw
		return nil
	}

	if err := boolParam("is_palindrome", &params.IsPalindrome); err != nil {
		return params, nil, err
	}

	intParams := []struct {
		name string
		dest **int
	}{
		{"length", &params.Length},
		{"min_length", &params.MinLength},
		{"max_length", &params.MaxLength},
		{"word_count", &params.WordCount},
		{"min_word_count", &params.MinWordCount},
		{"max_word_count", &params.MaxWordCount},
		{"unique_characters", &params.UniqueCharacters},
		{"min_unique", &params.MinUnique},
		{"max_unique", &params.MaxUnique},
	}
	for _, p := range intParams {
		if err := intParam(p.name, p.dest); err != nil {
			return params, nil, err
		}
	}

	if raw := q.Get("contains_character"); raw != "" {
		params.ContainsCharacter = &raw
		applied["contains_character"] = raw
	}

	if len(applied) == 0 {
		applied = nil
	}
	return params, applied, nil
}
