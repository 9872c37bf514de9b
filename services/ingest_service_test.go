package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kokushiworks/exam_bank/models"
)

func TestIngestChunkBoundaries(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s)

	batch := make([]models.QuestionRecord, 45)
	for i := range batch {
		batch[i] = question(fmt.Sprintf("60A-%d", i+1))
	}

	var progress []int
	res, err := svc.Ingest(context.Background(), "Round 60", batch, func(written, total int) {
		require.Equal(t, 45, total)
		progress = append(progress, written)
	})
	require.NoError(t, err)
	require.Equal(t, IngestResult{Written: 45, Chunks: 3}, res)
	require.Equal(t, []int{20, 40, 45}, progress)

	count, err := s.CountAll(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 45, count)
}

func TestIngestStampsCallerYear(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s)

	batch := []models.QuestionRecord{question("60A-1")}
	batch[0].ExamYear = "bogus producer label"

	_, err := svc.Ingest(context.Background(), "Round 60", batch, nil)
	require.NoError(t, err)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Round 60", all[0].ExamYear)
}

func TestIngestUpsertsExistingKeys(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, "Round 60", []models.QuestionRecord{question("60A-1")}, nil)
	require.NoError(t, err)
	before, err := s.GetAll(ctx)
	require.NoError(t, err)

	updated := question("60a-1")
	updated.Body = "改訂版"
	res, err := svc.Ingest(ctx, "Round 60", []models.QuestionRecord{updated}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.Written)

	after, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	require.Equal(t, before[0].ID, after[0].ID)
	require.Equal(t, "改訂版", after[0].Body)
}

func TestIngestPartialBatchFailure(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s)

	batch := make([]models.QuestionRecord, 45)
	for i := range batch {
		batch[i] = question(fmt.Sprintf("60A-%d", i+1))
	}

	// Abort between chunks: committed chunks must stay committed and the
	// result must carry the count already applied.
	ctx, cancel := context.WithCancel(context.Background())
	res, err := svc.Ingest(ctx, "Round 60", batch, func(written, total int) {
		if written == 20 {
			cancel()
		}
	})
	require.Error(t, err)
	require.Equal(t, 20, res.Written)

	count, err := s.CountAll(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 20, count)
}
