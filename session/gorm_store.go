package session

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"cafe-management/utils"
)

// Record is the persisted form of a session: the payload is stored as a
// JSON blob so the schema never changes when session fields do.
type Record struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Data      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

func (Record) TableName() string {
	return "sessions"
}

// GormStore persists sessions in the application database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (g *GormStore) Get(id string) (*Session, error) {
	var rec Record
	if err := g.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if time.Since(rec.UpdatedAt) > Lifetime {
		g.DB.Delete(&Record{}, "id = ?", id)
		return nil, ErrNotFound
	}

	var s Session
	if err := json.Unmarshal([]byte(rec.Data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *GormStore) Save(s *Session) error {
	s.UpdatedAt = time.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	rec := Record{ID: s.ID, Data: string(data), UpdatedAt: s.UpdatedAt}
	return g.DB.Save(&rec).Error
}

func (g *GormStore) Delete(id string) error {
	return g.DB.Delete(&Record{}, "id = ?", id).Error
}

// Sweep deletes sessions idle past their lifetime.
func (g *GormStore) Sweep() error {
	cutoff := time.Now().Add(-Lifetime)
	return g.DB.Delete(&Record{}, "updated_at < ?", cutoff).Error
}

// StartSweeper sweeps expired sessions every hour until stop is closed.
func (g *GormStore) StartSweeper(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if err := g.Sweep(); err != nil {
					utils.ErrorLogger.Printf("session sweep failed: %v", err)
				}
			}
		}
	}()
}
