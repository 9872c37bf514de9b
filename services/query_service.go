package services

import (
	"context"
	"sort"

	"github.com/kokushiworks/exam_bank/keys"
	"github.com/kokushiworks/exam_bank/models"
	"github.com/kokushiworks/exam_bank/store"
)

// QueryFilter combines with logical AND. An empty Years or Categories
// slice applies no filter on that field; MinRate 0 matches everything.
type QueryFilter struct {
	Years      []string
	Categories []string
	MinRate    float64
}

type QueryService struct {
	store *store.QuestionStore
}

func NewQueryService(s *store.QuestionStore) *QueryService {
	return &QueryService{store: s}
}

// Query returns the matching records in display order: morning-session
// numbers ascending, then afternoon/supplementary numbers ascending, which
// neither lexical nor pure-numeric string ordering produces.
func (qs *QueryService) Query(ctx context.Context, filter QueryFilter) ([]models.QuestionRecord, error) {
	records, err := qs.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	years := toSet(filter.Years)
	categories := toSet(filter.Categories)

	matched := make([]models.QuestionRecord, 0, len(records))
	for _, r := range records {
		if len(years) > 0 && !years[r.ExamYear] {
			continue
		}
		if len(categories) > 0 && !categories[r.Category] {
			continue
		}
		if r.AccuracyRate < filter.MinRate {
			continue
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return keys.SortWeight(matched[i].DisplayNumber) < keys.SortWeight(matched[j].DisplayNumber)
	})
	return matched, nil
}

func (qs *QueryService) Years(ctx context.Context) ([]string, error) {
	return qs.store.ListDistinctYears(ctx)
}

type Stats struct {
	Questions int64    `json:"questions"`
	Years     []string `json:"years"`
}

func (qs *QueryService) Stats(ctx context.Context) (Stats, error) {
	count, err := qs.store.CountAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	years, err := qs.store.ListDistinctYears(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Questions: count, Years: years}, nil
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
