// internal/domain/user/otp.go
package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

const otpKeyPrefix = "otp:challenge:"

// OTPService issues and verifies one-time password challenges for
// password resets. Each challenge gets an opaque ID; the code lives in
// Redis under that ID with a TTL and is consumed on first successful
// verification.
type OTPService struct {
	client *redis.Client
	ttl    time.Duration
	digits int
}

// NewOTPService creates a new OTP service
func NewOTPService(client *redis.Client, ttl time.Duration, digits int) *OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if digits < 4 || digits > 10 {
		digits = 6
	}
	return &OTPService{client: client, ttl: ttl, digits: digits}
}

// Challenge is the issued OTP challenge. Code is for delivery to the
// user's email only and must not be returned to the client.
type Challenge struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
}

// Issue creates a challenge for the given email and stores it in Redis
func (o *OTPService) Issue(ctx context.Context, email string) (*Challenge, error) {
	code, err := o.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	ch := &Challenge{
		ID:        uuid.New().String(),
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(o.ttl),
	}

	key := otpKeyPrefix + ch.ID
	if err := o.client.HSet(ctx, key, "email", ch.Email, "code", ch.Code).Err(); err != nil {
		return nil, fmt.Errorf("failed to store OTP challenge: %w", err)
	}
	if err := o.client.Expire(ctx, key, o.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to set OTP expiry: %w", err)
	}

	return ch, nil
}

// Verify checks a submitted code against the stored challenge. The
// challenge is deleted when the code matches so it cannot be replayed.
func (o *OTPService) Verify(ctx context.Context, challengeID, code string) (string, error) {
	key := otpKeyPrefix + challengeID

	fields, err := o.client.HGetAll(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to load OTP challenge: %w", err)
	}
	if len(fields) == 0 {
		return "", errs.Validation("OTP expired or invalid")
	}

	if fields["code"] != code {
		return "", errs.Validation("invalid OTP code")
	}

	if err := o.client.Del(ctx, key).Err(); err != nil {
		return "", fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	return fields["email"], nil
}

func (o *OTPService) generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < o.digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", o.digits, n), nil
}
