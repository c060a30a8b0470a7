package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client é um cache JSON com TTL sobre redis. Sem endereço configurado o
// cliente vira no-op, para que o cache nunca seja pré-requisito da API.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, ttl time.Duration) *Client {
	if addr == "" {
		return &Client{ttl: ttl}
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *Client) Enabled() bool {
	return c.rdb != nil
}

// GetJSON carrega e desserializa a chave; ok=false em miss ou cache desligado.
func (c *Client) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}

	return true, nil
}

// SetJSON serializa e grava a chave com o TTL do cache.
func (c *Client) SetJSON(ctx context.Context, key string, v any) error {
	if c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
