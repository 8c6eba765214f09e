package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist invalidates issued tokens before they expire, keyed by
// the raw token string with a TTL matching the token's remaining lifetime.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance; nil means the feature is disabled
// (tokens then live until natural expiry).
var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens adds both tokens of a session to the blacklist.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return nil
	}
	if accessToken != "" {
		if err := TokenBlacklist.blacklist(accessToken); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		return TokenBlacklist.blacklist(refreshToken)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token has been invalidated.
func IsTokenBlacklisted(token string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		log.Printf("Warning: blacklist check failed: %v", err)
		return false
	}
	return exists > 0
}

func (b *RedisTokenBlacklist) blacklist(token string) error {
	ttl := remainingLifetime(token)
	if ttl <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return b.Client.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

// remainingLifetime reads the exp claim without verifying the signature; a
// token we cannot parse gets a conservative default TTL.
func remainingLifetime(tokenString string) time.Duration {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Hour
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Hour
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Hour
	}
	return time.Until(time.Unix(int64(exp), 0))
}
