package repositories

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reservoria/internal/domain/models"
	"reservoria/internal/utils"
)

// CachedReservations caches ListReservations results in Redis. With a nil
// client every call goes straight to Next.
type CachedReservations struct {
	Next   ReservationSource
	Redis  *redis.Client
	TTL    time.Duration
	Prefix string
}

func (c CachedReservations) ListReservations(ctx context.Context, f ReservationFilter) ([]models.Reservation, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if c.Redis == nil {
		return c.Next.ListReservations(ctx, f)
	}

	key := c.key(f)
	if bs, err := c.Redis.Get(ctx, key).Bytes(); err == nil {
		var cached []models.Reservation
		if err := json.Unmarshal(bs, &cached); err == nil {
			return cached, nil
		}
	}

	out, err := c.Next.ListReservations(ctx, f)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(out); err == nil {
		if err := c.Redis.Set(ctx, key, payload, c.ttl()).Err(); err != nil {
			utils.Log.WithError(err).WithField("key", key).Warn("reservation cache write failed")
		}
	}
	return out, nil
}

func (c CachedReservations) GetReservation(ctx context.Context, id string) (models.Reservation, error) {
	return c.Next.GetReservation(ctx, id)
}

func (c CachedReservations) ttl() time.Duration {
	if c.TTL <= 0 {
		return 5 * time.Minute
	}
	return c.TTL
}

func (c CachedReservations) key(f ReservationFilter) string {
	prefix := c.Prefix
	if prefix == "" {
		prefix = "reservations"
	}
	return CacheKey(prefix, f)
}

// CacheKey derives a stable key from the filter fields.
func CacheKey(prefix string, f ReservationFilter) string {
	raw := fmt.Sprintf("facility=%s|room=%s|from=%s|to=%s", f.FacilityID, f.RoomID, f.From, f.To)
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
