// internal/domain/review/service_test.go
package review

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
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

	require.NoError(t, db.AutoMigrate(&user.User{}, &catalog.Product{}, &Review{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB) catalog.Product {
	t.Helper()
	p := catalog.Product{Name: "Air Runner", Price: 259900, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCreateReviewRefreshesProductRating(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db)
	svc := NewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: 4, Comment: "Comfortable"})
	require.NoError(t, err)

	_, err = svc.CreateReview(&CreateReviewRequest{UserID: 2, ProductID: p.ID, Rating: 2})
	require.NoError(t, err)

	var got catalog.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 2, got.TotalReviews)
	assert.InDelta(t, 3.0, got.AverageRating, 0.001)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db)
	svc := NewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: 3})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestCreateReviewRejectsBadRating(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db)
	svc := NewService(db)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: rating})
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: 999, Rating: 4})
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestDeleteReviewRefreshesProductRating(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db)
	svc := NewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: 5})
	require.NoError(t, err)

	dropped, err := svc.CreateReview(&CreateReviewRequest{UserID: 2, ProductID: p.ID, Rating: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(dropped.ID))

	var got catalog.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 1, got.TotalReviews)
	assert.InDelta(t, 5.0, got.AverageRating, 0.001)

	err = svc.DeleteReview(dropped.ID)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestGetProductReviewsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db)
	svc := NewService(db)

	_, err := svc.CreateReview(&CreateReviewRequest{UserID: 1, ProductID: p.ID, Rating: 4})
	require.NoError(t, err)
	_, err = svc.CreateReview(&CreateReviewRequest{UserID: 2, ProductID: p.ID, Rating: 5})
	require.NoError(t, err)

	reviews, err := svc.GetProductReviews(p.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
