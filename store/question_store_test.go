package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kokushiworks/exam_bank/models"
)

func newTestStore(t *testing.T) *QuestionStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QuestionRecord{}))
	return New(db)
}

func record(displayNumber, year string) *models.QuestionRecord {
	return &models.QuestionRecord{
		ExamYear:      year,
		DisplayNumber: displayNumber,
		Category:      "解剖学",
		Body:          "問題文 " + displayNumber,
		Options:       models.OptionList{"1", "2", "3", "4", "5"},
		CorrectAnswer: "3",
	}
}

func TestUpsertInsertsThenUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := record("60A-4", "Round 60")
	id1, err := s.Upsert(ctx, first)
	require.NoError(t, err)

	updated := record("60A-4", "Round 60")
	updated.Body = "改訂された問題文"
	id2, err := s.Upsert(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, id1, id2, "identity must survive the update")

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "改訂された問題文", all[0].Body)
	require.WithinDuration(t, first.CreatedAt, all[0].CreatedAt, time.Second)
}

func TestUpsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Upsert(ctx, record("60A-4", "Round 60"))
		require.NoError(t, err)
	}

	count, err := s.CountAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUpsertCollapsesEquivalentKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := s.Upsert(ctx, record("60A-4", "Round 60"))
	require.NoError(t, err)
	id2, err := s.Upsert(ctx, record("  60a - 4 ", "Round 60"))
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "60a-4", all[0].CanonicalKey)
}

func TestListDistinctYearsDescending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, r := range []*models.QuestionRecord{
		record("59A-1", "Round 59"),
		record("60A-1", "Round 60"),
		record("60A-2", "Round 60"),
		record("61A-1", "Round 61"),
	} {
		_, err := s.Upsert(ctx, r)
		require.NoError(t, err)
	}

	years, err := s.ListDistinctYears(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Round 61", "Round 60", "Round 59"}, years)
}

func TestDeleteByYear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, r := range []*models.QuestionRecord{
		record("60A-1", "Round 60"),
		record("60A-2", "Round 60"),
		record("61A-1", "Round 61"),
	} {
		_, err := s.Upsert(ctx, r)
		require.NoError(t, err)
	}

	deleted, err := s.DeleteByYear(ctx, "Round 60")
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Round 61", all[0].ExamYear)
}
