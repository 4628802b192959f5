// internal/domain/wishlist/service_test.go
package wishlist

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory SQLite gives every pooled connection its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&catalog.Product{}, &catalog.ProductImage{}, &WishlistItem{}))
	return db
}

func TestAddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	p := catalog.Product{Name: "Air Runner", Price: 259900, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	svc := NewService(db)

	first, err := svc.Add(1, p.ID)
	require.NoError(t, err)

	second, err := svc.Add(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&WishlistItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddRejectsInactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	p := catalog.Product{Name: "Retired Model", Price: 99900, IsActive: false}
	require.NoError(t, db.Create(&p).Error)
	svc := NewService(db)

	_, err := svc.Add(1, p.ID)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestListReturnsProducts(t *testing.T) {
	db := setupTestDB(t)
	p := catalog.Product{Name: "Air Runner", Price: 259900, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	svc := NewService(db)

	_, err := svc.Add(1, p.ID)
	require.NoError(t, err)

	items, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Air Runner", items[0].Product.Name)

	items, err = svc.List(2)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemove(t *testing.T) {
	db := setupTestDB(t)
	p := catalog.Product{Name: "Air Runner", Price: 259900, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	svc := NewService(db)

	_, err := svc.Add(1, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(1, p.ID))

	err = svc.Remove(1, p.ID)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
