package store

import (
	"errors"
	"fmt"

	"aqari/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrUnknownKey reports a collection key absent from the registry.
	ErrUnknownKey = errors.New("unknown collection key")
	// ErrNotFound reports a delete against an id the store has never seen.
	ErrNotFound = errors.New("record not found")
)

// Syncer applies whole-collection batches against the store. Each batch runs
// in one transaction: either every item lands or none does.
type Syncer struct {
	DB         *gorm.DB
	bcryptCost int
}

// NewSyncer builds a Syncer. bcryptCost <= 0 falls back to the bcrypt
// default cost.
func NewSyncer(db *gorm.DB, bcryptCost int) *Syncer {
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &Syncer{DB: db, bcryptCost: bcryptCost}
}

// SaveSettings upserts the AppSettings singleton row. The id is forced to
// the fixed singleton key regardless of what the payload carries.
func (s *Syncer) SaveSettings(rec map[string]interface{}) error {
	if rec == nil {
		rec = map[string]interface{}{}
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return upsert(tx, &models.AppSettings{}, models.SettingsID, rec)
	})
}

// SaveCollection resolves key and upserts every item of the batch, in input
// order, inside one transaction. Items are sanitized and transformed before
// the write; contract schedule replacements run right after their contract's
// own upsert. Any failure rolls the whole batch back.
func (s *Syncer) SaveCollection(key string, items []map[string]interface{}) error {
	kind, ok := Resolve(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, item := range items {
			rec, rels := Sanitize(kind, item)

			id, _ := rec["id"].(string)
			if id == "" {
				return fmt.Errorf("%s item %d: missing id", key, i)
			}

			var n int64
			if err := tx.Model(kind.Model()).Where("id = ?", id).Count(&n).Error; err != nil {
				return fmt.Errorf("%s %s: lookup: %w", key, id, err)
			}
			exists := n > 0

			replaces, err := s.transform(kind, id, rec, rels, exists)
			if err != nil {
				return err
			}

			if err := upsertPrepared(tx, kind.Model(), id, rec, exists); err != nil {
				return fmt.Errorf("%s %s: %w", key, id, err)
			}

			for _, r := range replaces {
				if err := replaceSchedule(tx, r); err != nil {
					return fmt.Errorf("%s %s: payment schedule: %w", key, id, err)
				}
			}
		}
		return nil
	})
}

// Delete removes one entity by id. A miss is reported as an error: the
// legacy clients expect a failure response, not a silent success.
func (s *Syncer) Delete(key, id string) error {
	kind, ok := Resolve(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	res := s.DB.Where("id = ?", id).Delete(kind.Model())
	if res.Error != nil {
		return fmt.Errorf("delete %s/%s: %w", key, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, key, id)
	}
	return nil
}

// upsert checks existence itself; upsertPrepared trusts the caller's check
// (the syncer needs the answer earlier, for the transform step).
func upsert(tx *gorm.DB, model interface{}, id string, rec map[string]interface{}) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	return upsertPrepared(tx, model, id, rec, n > 0)
}

func upsertPrepared(tx *gorm.DB, model interface{}, id string, rec map[string]interface{}, exists bool) error {
	if exists {
		upd := make(map[string]interface{}, len(rec))
		for k, v := range rec {
			if k == "id" {
				continue
			}
			upd[k] = v
		}
		if len(upd) == 0 {
			return nil
		}
		if err := tx.Model(model).Where("id = ?", id).Updates(upd).Error; err != nil {
			return fmt.Errorf("update: %w", err)
		}
		return nil
	}

	rec["id"] = id
	if err := tx.Model(model).Create(rec).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// replaceSchedule deletes every schedule row of the contract and inserts the
// submitted rows, all within the enclosing transaction.
func replaceSchedule(tx *gorm.DB, r scheduleReplace) error {
	if err := tx.Where("contractId = ?", r.ContractID).Delete(&models.PaymentSchedule{}).Error; err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, row := range r.Rows {
		if err := tx.Model(&models.PaymentSchedule{}).Create(row).Error; err != nil {
			return fmt.Errorf("insert: %w", err)
		}
	}
	return nil
}
