// internal/domain/user/otp_test.go
package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

func setupOTP(t *testing.T, ttl time.Duration) (*OTPService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewOTPService(client, ttl, 6), mr
}

func TestOTPIssueStoresChallengeWithTTL(t *testing.T) {
	svc, mr := setupOTP(t, 5*time.Minute)

	ch, err := svc.Issue(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, ch.ID)
	assert.Len(t, ch.Code, 6)
	assert.Equal(t, "asha@example.com", ch.Email)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), ch.ExpiresAt, 2*time.Second)

	key := "otp:challenge:" + ch.ID
	assert.True(t, mr.Exists(key))
	assert.Equal(t, ch.Code, mr.HGet(key, "code"))
	assert.Equal(t, ch.Email, mr.HGet(key, "email"))
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestOTPVerifyConsumesChallenge(t *testing.T) {
	svc, mr := setupOTP(t, 5*time.Minute)

	ch, err := svc.Issue(context.Background(), "asha@example.com")
	require.NoError(t, err)

	email, err := svc.Verify(context.Background(), ch.ID, ch.Code)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", email)
	assert.False(t, mr.Exists("otp:challenge:"+ch.ID))

	// A consumed challenge cannot be replayed
	_, err = svc.Verify(context.Background(), ch.ID, ch.Code)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestOTPVerifyWrongCode(t *testing.T) {
	svc, mr := setupOTP(t, 5*time.Minute)

	ch, err := svc.Issue(context.Background(), "asha@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), ch.ID, "000000")
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	// A wrong guess does not consume the challenge
	assert.True(t, mr.Exists("otp:challenge:"+ch.ID))
	_, err = svc.Verify(context.Background(), ch.ID, ch.Code)
	require.NoError(t, err)
}

func TestOTPVerifyExpiredChallenge(t *testing.T) {
	svc, mr := setupOTP(t, time.Minute)

	ch, err := svc.Issue(context.Background(), "asha@example.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.Verify(context.Background(), ch.ID, ch.Code)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestOTPVerifyUnknownChallenge(t *testing.T) {
	svc, _ := setupOTP(t, time.Minute)

	_, err := svc.Verify(context.Background(), "no-such-challenge", "123456")
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestOTPDefaultsApplied(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewOTPService(client, 0, 0)
	ch, err := svc.Issue(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Len(t, ch.Code, 6)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), ch.ExpiresAt, 2*time.Second)
}
