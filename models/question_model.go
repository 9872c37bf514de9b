package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionList is the ordered choice list of a question, stored as a JSON
// text column. The producer contract is exactly five entries; the store
// does not enforce it.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
}

// QuestionRecord is the single persisted entity: one exam question as
// reconciled from the content batch and the accuracy batch.
//
// CanonicalKey is maintained by the store from DisplayNumber and carries
// the uniqueness constraint; ExamYear and Category carry the secondary
// indexes used by the query filters.
type QuestionRecord struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ExamYear         string     `gorm:"size:100;index" json:"exam_year"`
	DisplayNumber    string     `gorm:"size:50;not null" json:"display_number"`
	CanonicalKey     string     `gorm:"size:50;uniqueIndex;not null" json:"canonical_key"`
	Category         string     `gorm:"size:255;index" json:"category"`
	Body             string     `gorm:"type:text" json:"body"`
	Options          OptionList `gorm:"type:text" json:"options"`
	CorrectAnswer    string     `gorm:"type:text" json:"correct_answer"`
	AccuracyRate     float64    `gorm:"default:0" json:"accuracy_rate"`
	ImageDescription string     `gorm:"type:text" json:"image_description,omitempty"`
	AssetLink        string     `gorm:"type:text" json:"asset_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *QuestionRecord) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// AccuracyPatch is the sparse patch produced by the accuracy batch:
// only the rate and category of a matched record may change.
type AccuracyPatch struct {
	Rate     float64
	Category string
}

// ApplyAccuracy is the single merge point for the accuracy pipeline.
func (q *QuestionRecord) ApplyAccuracy(p AccuracyPatch) {
	q.AccuracyRate = p.Rate
	q.Category = p.Category
}

// ApplyAssetLink is the single merge point for the asset-link pipeline.
func (q *QuestionRecord) ApplyAssetLink(url string) {
	q.AssetLink = url
}
