package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a fail-safe JSON cache over redis: a nil client, a broken
// connection or an undecodable payload all behave like a miss, so the
// catalog keeps serving from the database when redis is down.
type Client struct {
	client *redis.Client
}

// New creates a new redis-backed cache client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// GetJSON loads the entry under key into dest and reports whether a usable
// entry was found.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores value under key with a TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, ttl)
}

// Delete removes a key.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key)
}
