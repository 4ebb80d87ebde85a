package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisFailsWhenUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rc, err := NewRedis(ctx, "127.0.0.1", "1", "")

	assert.Nil(t, rc)
	assert.ErrorContains(t, err, "cache ping 127.0.0.1:1")
}

func TestRedisSatisfiesCache(t *testing.T) {
	var _ Cache = (*Redis)(nil)
}
