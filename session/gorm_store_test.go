package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafe-management/models"
)

func setupGormStore(t *testing.T) *GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := setupGormStore(t)

	s := New()
	s.Cart = s.Cart.Add(models.Menu{ID: 3, Name: "녹차라떼", Price: 4000}, 1, models.TempHot, "덜 달게")
	assert.NoError(t, store.Save(s))

	loaded, err := store.Get(s.ID)
	assert.NoError(t, err)
	assert.Len(t, loaded.Cart, 1)
	assert.Equal(t, "녹차라떼", loaded.Cart[0].MenuName)
	assert.Equal(t, "덜 달게", loaded.Cart[0].SpecialRequest)

	// saving again overwrites the same record
	loaded.AdminLoggedIn = true
	assert.NoError(t, store.Save(loaded))

	again, err := store.Get(s.ID)
	assert.NoError(t, err)
	assert.True(t, again.AdminLoggedIn)

	assert.NoError(t, store.Delete(s.ID))
	_, err = store.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStoreSweepPurgesExpired(t *testing.T) {
	store := setupGormStore(t)

	stale := New()
	fresh := New()
	assert.NoError(t, store.Save(stale))
	assert.NoError(t, store.Save(fresh))

	// backdate past the lifetime, bypassing gorm's timestamp tracking
	err := store.DB.Model(&Record{}).
		Where("id = ?", stale.ID).
		UpdateColumn("updated_at", time.Now().Add(-Lifetime-time.Minute)).Error
	assert.NoError(t, err)

	assert.NoError(t, store.Sweep())

	_, err = store.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}
