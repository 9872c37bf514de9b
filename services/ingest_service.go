package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kokushiworks/exam_bank/models"
	"github.com/kokushiworks/exam_bank/store"
)

// Chunk size bounds the in-flight work against a possibly large producer
// batch; chunk N+1 is not submitted before chunk N has fully committed.
const ingestChunkSize = 20

// ProgressFunc is called after every committed chunk with the records
// written so far and the batch total.
type ProgressFunc func(written, total int)

type IngestService struct {
	store *store.QuestionStore
}

func NewIngestService(s *store.QuestionStore) *IngestService {
	return &IngestService{store: s}
}

type IngestResult struct {
	Written int `json:"written"`
	Chunks  int `json:"chunks"`
}

// Ingest applies a producer batch as an upsert stream. The exam-year label
// comes from the caller, never from the producer. A failure aborts the
// remaining chunks; chunks already applied stay committed, and the result
// carries the count written so the caller can decide about the remainder.
func (s *IngestService) Ingest(ctx context.Context, year string, batch []models.QuestionRecord, progress ProgressFunc) (IngestResult, error) {
	total := len(batch)
	var res IngestResult

	for start := 0; start < total; start += ingestChunkSize {
		end := start + ingestChunkSize
		if end > total {
			end = total
		}

		for i := start; i < end; i++ {
			rec := batch[i]
			rec.ID = uuid.Nil
			rec.ExamYear = year
			if _, err := s.store.Upsert(ctx, &rec); err != nil {
				return res, fmt.Errorf("ingest aborted after %d of %d records: %w", res.Written, total, err)
			}
			res.Written++
		}

		res.Chunks++
		if progress != nil {
			progress(res.Written, total)
		}
	}

	log.Printf("Ingested %d records for %q in %d chunks", res.Written, year, res.Chunks)
	return res, nil
}
