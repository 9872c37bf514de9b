package services

import (
	"context"
	"log"

	"github.com/kokushiworks/exam_bank/keys"
	"github.com/kokushiworks/exam_bank/models"
	"github.com/kokushiworks/exam_bank/store"
)

// AccuracyMapping is one row of the accuracy batch: a free-text exam
// identifier with the rate and subject category extracted for it.
type AccuracyMapping struct {
	Key      string  `json:"key"`
	Rate     float64 `json:"accuracy_rate"`
	Category string  `json:"category"`
}

type ReconcileResult struct {
	Patched   int `json:"patched"`
	Unmatched int `json:"unmatched"`
}

type ReconcileService struct {
	store *store.QuestionStore
}

func NewReconcileService(s *store.QuestionStore) *ReconcileService {
	return &ReconcileService{store: s}
}

// Reconcile merges the accuracy batch into the stored questions: one scan
// over the collection, patching only the rate and category of rows whose
// canonical key appears in the batch. Duplicate keys within the batch are
// last-value-wins; batch entries matching no stored row are counted and
// dropped, never an error — the two batches are produced independently and
// the identifier format is only approximately shared.
func (rs *ReconcileService) Reconcile(ctx context.Context, mappings []AccuracyMapping) (ReconcileResult, error) {
	patches := make(map[string]models.AccuracyPatch, len(mappings))
	for _, m := range mappings {
		key := keys.Normalize(m.Key)
		if key == "" {
			continue
		}
		patches[key] = models.AccuracyPatch{Rate: m.Rate, Category: m.Category}
	}

	var patched int
	err := rs.store.Transaction(ctx, func(tx *store.QuestionStore) error {
		records, err := tx.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range records {
			p, ok := patches[keys.Normalize(records[i].DisplayNumber)]
			if !ok {
				continue
			}
			records[i].ApplyAccuracy(p)
			if _, err := tx.Upsert(ctx, &records[i]); err != nil {
				return err
			}
			patched++
		}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	res := ReconcileResult{Patched: patched, Unmatched: len(patches) - patched}
	if res.Unmatched > 0 {
		log.Printf("Reconcile: %d of %d accuracy keys matched no stored record", res.Unmatched, len(patches))
	}
	return res, nil
}
