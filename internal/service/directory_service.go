package service

import (
	"strings"

	"encontrapsi/internal/domain/entity"
)

// DirectoryService narrows the psychologist directory. Pure functions
// over in-memory records: the repository decides what is loaded, the
// service decides what matches, so a different storage backend never
// touches the matching rules.
type DirectoryService struct{}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

// Filter returns the records matching all active criteria, preserving
// input order. Records without an active subscription are never
// returned, whatever the criteria say.
func (s *DirectoryService) Filter(records []entity.PsychologistProfile, filter entity.DirectoryFilter) []entity.PsychologistProfile {
	filter.Normalize(records)

	matched := make([]entity.PsychologistProfile, 0, len(records))
	for _, rec := range records {
		if !rec.IsDiscoverable() {
			continue
		}
		if !matchesTerm(&rec, filter.Term) {
			continue
		}
		if filter.Approach != "" && !rec.Approaches.Contains(filter.Approach) {
			continue
		}
		if filter.State != "" && rec.State != filter.State {
			continue
		}
		if filter.City != "" && rec.City != filter.City {
			continue
		}
		if !matchesModalities(&rec, filter.Modalities) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// MatchByResult returns active records practicing any of the result's
// winning approaches. With two winners a record matching either one is
// included.
func (s *DirectoryService) MatchByResult(records []entity.PsychologistProfile, result *entity.QuizResult) []entity.PsychologistProfile {
	matched := make([]entity.PsychologistProfile, 0, len(records))
	for _, rec := range records {
		if !rec.IsDiscoverable() {
			continue
		}
		if rec.Approaches.Intersects(result.Approaches) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matchesTerm(rec *entity.PsychologistProfile, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(rec.User.FullName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Bio), term) {
		return true
	}
	for _, specialty := range rec.Specialties {
		if strings.Contains(strings.ToLower(specialty), term) {
			return true
		}
	}
	return false
}

// matchesModalities applies OR semantics: any overlap between the
// requested set and the record's modalities is a match.
func matchesModalities(rec *entity.PsychologistProfile, requested []entity.Modality) bool {
	if len(requested) == 0 {
		return true
	}
	for _, m := range requested {
		if rec.Modalities.Contains(m) {
			return true
		}
	}
	return false
}
