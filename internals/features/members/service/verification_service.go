package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	database "gymku_backend/internals/databases"
)

const codeTTL = 5 * time.Minute

func codeKey(email string) string {
	return "verify:" + strings.ToLower(strings.TrimSpace(email))
}

// IssueVerificationCode stores a fresh 6-digit code in Redis with a 5-minute
// TTL and returns it. Codes live in Redis (not in-process) so multiple server
// instances stay consistent.
func IssueVerificationCode(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := database.Redis.Set(ctx, codeKey(email), code, codeTTL).Err(); err != nil {
		return "", fmt.Errorf("store code: %w", err)
	}
	return code, nil
}

// VerifyCode checks the submitted code. A matching code is consumed; expired
// or missing codes report false.
func VerifyCode(ctx context.Context, email, code string) (bool, error) {
	stored, err := database.Redis.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load code: %w", err)
	}
	if stored != code {
		return false, nil
	}
	// consume on success
	_ = database.Redis.Del(ctx, codeKey(email)).Err()
	return true, nil
}
