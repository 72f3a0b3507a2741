package zone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"menagerie/internal/zoo/models"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/sentinel"
)

const (
	zoneSeqKey   = "zoo:zone:seq"
	zoneIndexKey = "zoo:zones"
)

func zoneKey(zoneID id.ZoneID) string { return "zoo:zone:" + zoneID.String() }

func zoneNameKey(name string) string { return "zoo:zone-name:" + name }

// RedisStore persists zones as JSON documents. A sorted set keyed by id keeps
// load order, and a SETNX name index enforces unique names.
type RedisStore struct {
	rdb redis.UniversalClient
}

func NewRedis(rdb redis.UniversalClient) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error) {
	raw, err := s.rdb.Get(ctx, zoneKey(zoneID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("zone %s: %w", zoneID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return decodeZone(raw)
}

func (s *RedisStore) FindAll(ctx context.Context) ([]*models.Zone, error) {
	ids, err := s.rdb.ZRange(ctx, zoneIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list zone ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, member := range ids {
		keys[i] = "zoo:zone:" + member
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}

	zones := make([]*models.Zone, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// removed between ZRANGE and MGET
			continue
		}
		z, err := decodeZone([]byte(raw))
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// Save inserts z when it has no id and updates it otherwise.
func (s *RedisStore) Save(ctx context.Context, z *models.Zone) (*models.Zone, error) {
	stored := *z
	if stored.ID.IsNil() {
		return s.insert(ctx, stored)
	}
	return s.update(ctx, stored)
}

func (s *RedisStore) insert(ctx context.Context, z models.Zone) (*models.Zone, error) {
	seq, err := s.rdb.Incr(ctx, zoneSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("next zone id: %w", err)
	}
	z.ID = id.ZoneID(seq)

	if err := s.claimName(ctx, z.Name, z.ID); err != nil {
		return nil, err
	}
	if err := s.write(ctx, &z); err != nil {
		_ = s.rdb.Del(ctx, zoneNameKey(z.Name)).Err()
		return nil, err
	}
	return &z, nil
}

func (s *RedisStore) update(ctx context.Context, z models.Zone) (*models.Zone, error) {
	existing, err := s.FindByID(ctx, z.ID)
	if err != nil {
		return nil, err
	}
	if existing.Name != z.Name {
		if err := s.claimName(ctx, z.Name, z.ID); err != nil {
			return nil, err
		}
	}
	if err := s.write(ctx, &z); err != nil {
		return nil, err
	}
	if existing.Name != z.Name {
		if err := s.rdb.Del(ctx, zoneNameKey(existing.Name)).Err(); err != nil {
			return nil, fmt.Errorf("release zone name: %w", err)
		}
	}
	return &z, nil
}

func (s *RedisStore) claimName(ctx context.Context, name string, zoneID id.ZoneID) error {
	ok, err := s.rdb.SetNX(ctx, zoneNameKey(name), zoneID.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("claim zone name: %w", err)
	}
	if !ok {
		return fmt.Errorf("zone name %q: %w", name, sentinel.ErrAlreadyUsed)
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, z *models.Zone) error {
	raw, err := json.Marshal(z)
	if err != nil {
		return fmt.Errorf("encode zone: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, zoneKey(z.ID), raw, 0)
		pipe.ZAdd(ctx, zoneIndexKey, redis.Z{Score: float64(z.ID), Member: z.ID.String()})
		return nil
	})
	if err != nil {
		return fmt.Errorf("write zone: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, zoneID id.ZoneID) error {
	existing, err := s.FindByID(ctx, zoneID)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, zoneKey(zoneID), zoneNameKey(existing.Name))
		pipe.ZRem(ctx, zoneIndexKey, zoneID.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	return nil
}

func decodeZone(raw []byte) (*models.Zone, error) {
	var z models.Zone
	if err := json.Unmarshal(raw, &z); err != nil {
		return nil, fmt.Errorf("decode zone: %w", err)
	}
	return &z, nil
}
