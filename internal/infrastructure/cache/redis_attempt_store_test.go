package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jhoicas/rustock/internal/infrastructure/cache"
	"github.com/jhoicas/rustock/pkg/config"
	"github.com/stretchr/testify/suite"
)

// Requiere un Redis real: RUSTOCK_TEST_REDIS_ADDR=localhost:6379.
type RedisAttemptStoreSuite struct {
	suite.Suite
	store *cache.RedisAttemptStore
	ctx   context.Context
}

func TestRedisAttemptStore(t *testing.T) {
	addr := os.Getenv("RUSTOCK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RUSTOCK_TEST_REDIS_ADDR no definido")
	}
	s := new(RedisAttemptStoreSuite)
	client, err := cache.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	s.store = cache.NewRedisAttemptStore(client, "rustock-test")
	suite.Run(t, s)
}

func (s *RedisAttemptStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.store.Reset(s.ctx, "login:admin"))
}

func (s *RedisAttemptStoreSuite) TestCuentaYReinicia() {
	n, err := s.store.Failures(s.ctx, "login:admin")
	s.NoError(err)
	s.Zero(n)

	for want := 1; want <= 3; want++ {
		n, err = s.store.RecordFailure(s.ctx, "login:admin", time.Minute)
		s.NoError(err)
		s.Equal(want, n)
	}

	s.NoError(s.store.Reset(s.ctx, "login:admin"))
	n, err = s.store.Failures(s.ctx, "login:admin")
	s.NoError(err)
	s.Zero(n)
}

func (s *RedisAttemptStoreSuite) TestExpira() {
	_, err := s.store.RecordFailure(s.ctx, "login:admin", time.Second)
	s.NoError(err)
	time.Sleep(1500 * time.Millisecond)

	n, err := s.store.Failures(s.ctx, "login:admin")
	s.NoError(err)
	s.Zero(n)
}
