package redis

import (
	"testing"

	"github.com/mvillaluz/tindera-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	t.Parallel()

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	t.Parallel()

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:pw@localhost:6380/2", PoolSize: 5})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("addr mismatch: %s", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("db mismatch: %d", opts.DB)
	}
	if opts.PoolSize != 5 {
		t.Fatalf("pool size mismatch: %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	t.Parallel()

	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", Password: "pw", DB: 1})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "localhost:6379" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestIdempotencyKeyNamespacing(t *testing.T) {
	t.Parallel()

	c := &Client{}
	key := c.IdempotencyKey("POST|/api/v1/checkout", "abc")
	if key != "tindera:idempotency:POST|/api/v1/checkout:abc" {
		t.Fatalf("unexpected key: %s", key)
	}
}
