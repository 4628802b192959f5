// internal/domain/contact/service_test.go
package contact

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

	require.NoError(t, db.AutoMigrate(&Message{}))
	return db
}

type fakeContactNotifier struct {
	emails []string
}

func (n *fakeContactNotifier) EnqueueContactMessage(fromEmail, _, _, _ string) {
	n.emails = append(n.emails, fromEmail)
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeContactNotifier{}
	svc := NewService(db, notifier)

	msg, err := svc.Submit(&SubmitRequest{
		Name:    "Asha",
		Email:   "Asha@Example.com",
		Subject: "Sizing question",
		Body:    "Do the Air Runners run small?",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", msg.Email)
	assert.Equal(t, []string{"asha@example.com"}, notifier.emails)

	messages, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestSubmitRejectsBlankBody(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil)

	_, err := svc.Submit(&SubmitRequest{Name: "Asha", Email: "asha@example.com", Body: "   "})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestSubmitWithoutNotifier(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil)

	_, err := svc.Submit(&SubmitRequest{Name: "Asha", Email: "asha@example.com", Body: "Hi"})
	require.NoError(t, err)
}
