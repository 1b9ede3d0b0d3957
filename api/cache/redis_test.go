package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHelpersWithoutClient(t *testing.T) {
	Client = nil
	ctx := context.Background()

	_, err := Get(ctx, "tournament_summary:x")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, Set(ctx, "tournament_summary:x", []byte("{}"), time.Minute), ErrNotInitialized)

	// Invalidation is best effort and never fails without redis.
	assert.NoError(t, Delete(ctx, "tournament_summary:x"))
	assert.NoError(t, DeleteByPrefix(ctx, "tournament_summary:"))
}

func TestInitFromEnvRejectsBadURL(t *testing.T) {
	t.Setenv("REDIS_URL", "://not a url")
	err := InitFromEnv()
	assert.Error(t, err)
}
