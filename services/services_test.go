package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kokushiworks/exam_bank/models"
	"github.com/kokushiworks/exam_bank/store"
)

func newTestStore(t *testing.T) *store.QuestionStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QuestionRecord{}))
	return store.New(db)
}

func question(displayNumber string) models.QuestionRecord {
	return models.QuestionRecord{
		DisplayNumber: displayNumber,
		Body:          "問題文 " + displayNumber,
		Options:       models.OptionList{"選択肢1", "選択肢2", "選択肢3", "選択肢4", "選択肢5"},
		CorrectAnswer: "2",
	}
}
