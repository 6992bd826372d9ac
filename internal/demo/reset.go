package demo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"aqari/internal/database"
	"aqari/internal/models"

	"gorm.io/gorm"
)

// DefaultInterval between reset checks when none is configured.
const DefaultInterval = 4 * time.Hour

// ResetService periodically restores the demo dataset. Each tick it reads
// the settings row; when isDemoMode is off the tick is a no-op. The wipe and
// the existence checks run in one transaction, so live traffic only ever
// sees the graph before or after a reset, never mid-wipe.
type ResetService struct {
	DB         *gorm.DB
	Interval   time.Duration
	BcryptCost int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewResetService(db *gorm.DB, interval time.Duration, bcryptCost int) *ResetService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &ResetService{
		DB:         db,
		Interval:   interval,
		BcryptCost: bcryptCost,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the ticker goroutine. Errors inside a tick are logged and
// swallowed; the next tick simply tries again.
func (s *ResetService) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				if err := s.ResetIfDemo(); err != nil {
					log.Printf("demo reset: %v", err)
				}
			}
		}
	}()
}

// Stop ends the ticker goroutine and waits for it to exit.
func (s *ResetService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// ResetIfDemo runs a reset only when the settings row exists and the
// demo-mode flag is set.
func (s *ResetService) ResetIfDemo() error {
	var settings models.AppSettings
	if err := s.DB.Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	if !settings.IsDemoMode {
		return nil
	}

	log.Println("demo reset: wiping and reseeding")
	return s.Reset()
}

// Reset wipes the entity graph in dependency order and reseeds the canonical
// demo dataset. Callable directly, without the timer.
func (s *ResetService) Reset() error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// children before parents, so no delete trips a foreign key
		order := []interface{}{
			&models.Transaction{},
			&models.PaymentSchedule{},
			&models.Document{},
			&models.Expense{},
			&models.Reminder{},
			&models.PayoutVoucher{},
			&models.LeaseContract{},
			&models.Appliance{},
			&models.Unit{},
			&models.Property{},
			&models.Tenant{},
			&models.Owner{},
			&models.Wallet{},
			&models.User{},
		}
		for _, model := range order {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", model, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("wipe graph: %w", err)
	}

	if err := database.Seed(s.DB, s.BcryptCost); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	log.Println("demo reset: database restored to default")
	return nil
}
