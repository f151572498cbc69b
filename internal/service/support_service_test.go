package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNextAttemptCountWithoutRedisClient(t *testing.T) {
	s := &supportService{rdb: nil, logger: nopLogger{}}

	assert.Equal(t, 1, s.nextAttemptCount(context.Background(), uuid.New()))
}

func TestNextAttemptCountWhenRedisUnreachable(t *testing.T) {
	// Port 1 is never listening; the INCR fails immediately and the counter
	// degrades to attempt 1 instead of failing the query.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()

	s := &supportService{rdb: rdb, logger: nopLogger{}}

	assert.Equal(t, 1, s.nextAttemptCount(context.Background(), uuid.New()))
}
