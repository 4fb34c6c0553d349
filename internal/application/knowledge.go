package application

import (
	"strings"

	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"github.com/gecwayanad/admission-go/internal/repository"
)

type KnowledgeService struct {
	Repos *repository.Repos
}

func NewKnowledgeService(repos *repository.Repos) *KnowledgeService {
	return &KnowledgeService{
		Repos: repos,
	}
}

// Answer runs the keyword lookup: lowercase the query, scan entries in
// storage order, return the answer of the first entry with any keyword
// contained in the query. No ranking, no multi-match scoring. The fallback
// string is returned verbatim when nothing matches.
func (s *KnowledgeService) Answer(query string) (string, error) {
	entries, err := s.Repos.Knowledge.ListAll()
	if err != nil {
		return "", err
	}

	lowerQuery := strings.ToLower(query)
	for _, entry := range entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowerQuery, kw) {
				return entry.Answer, nil
			}
		}
	}

	return knowledge.FallbackAnswer, nil
}

// Seed inserts the given entries. Callers decide whether to skip when the
// table is already populated.
func (s *KnowledgeService) Seed(entries []knowledge.Entry) error {
	return s.Repos.Knowledge.CreateBatch(entries)
}

func (s *KnowledgeService) IsEmpty() (bool, error) {
	count, err := s.Repos.Knowledge.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
