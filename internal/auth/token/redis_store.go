package token

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

// Records outlive the access token itself so a refresh token can still
// be used on re-entry; 30 days matches the flow cookie lifetime.
const recordTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed token record store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "oauth_token:",
	}
}

func (r *RedisStore) key(flowID, provider string) string {
	return r.prefix + flowID + ":" + provider
}

func (r *RedisStore) Save(ctx context.Context, flowID, provider string, tok *oauth2.Token) error {
	if flowID == "" || provider == "" {
		return fmt.Errorf("token: missing flow_id or provider")
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("token: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(flowID, provider), data, recordTTL).Err()
}

func (r *RedisStore) Get(ctx context.Context, flowID, provider string) (*oauth2.Token, error) {
	val, err := r.client.Get(ctx, r.key(flowID, provider)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(val), &tok); err != nil {
		return nil, fmt.Errorf("token: failed to unmarshal: %w", err)
	}

	return &tok, nil
}

func (r *RedisStore) Delete(ctx context.Context, flowID, provider string) error {
	return r.client.Del(ctx, r.key(flowID, provider)).Err()
}
