package creature

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
	creatureSeqKey   = "zoo:creature:seq"
	creatureIndexKey = "zoo:creatures"
)

func creatureKey(creatureID id.CreatureID) string { return "zoo:creature:" + creatureID.String() }

func zoneMembersKey(zoneID id.ZoneID) string { return "zoo:zone:" + zoneID.String() + ":creatures" }

// RedisStore persists creatures as JSON documents. Each zone keeps a set of
// its creature ids so occupancy is a single SCARD.
type RedisStore struct {
	rdb   redis.UniversalClient
	zones ZoneFinder
}

func NewRedis(rdb redis.UniversalClient, zones ZoneFinder) *RedisStore {
	return &RedisStore{rdb: rdb, zones: zones}
}

func (s *RedisStore) FindByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error) {
	c, err := s.load(ctx, creatureID)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisStore) FindAll(ctx context.Context) ([]*models.Creature, error) {
	members, err := s.rdb.ZRange(ctx, creatureIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list creature ids: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}
	keys := make([]string, len(members))
	for i, member := range members {
		keys[i] = "zoo:creature:" + member
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load creatures: %w", err)
	}

	creatures := make([]*models.Creature, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		c, err := decodeCreature([]byte(raw))
		if err != nil {
			return nil, err
		}
		if err := s.hydrate(ctx, c); err != nil {
			return nil, err
		}
		creatures = append(creatures, c)
	}
	return creatures, nil
}

// Save inserts c when it has no id and updates it otherwise. Moving a
// creature updates both zone membership sets in the same transaction.
func (s *RedisStore) Save(ctx context.Context, c *models.Creature) (*models.Creature, error) {
	zone, err := s.zones.FindByID(ctx, c.ZoneID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("creature zone %s: %w", c.ZoneID, sentinel.ErrInvalidState)
		}
		return nil, err
	}

	stored := *c
	stored.Zone = nil
	var previousZone id.ZoneID
	if stored.ID.IsNil() {
		seq, err := s.rdb.Incr(ctx, creatureSeqKey).Result()
		if err != nil {
			return nil, fmt.Errorf("next creature id: %w", err)
		}
		stored.ID = id.CreatureID(seq)
	} else {
		existing, err := s.load(ctx, stored.ID)
		if err != nil {
			return nil, err
		}
		previousZone = existing.ZoneID
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode creature: %w", err)
	}
	member := stored.ID.String()
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, creatureKey(stored.ID), raw, 0)
		pipe.ZAdd(ctx, creatureIndexKey, redis.Z{Score: float64(stored.ID), Member: member})
		if !previousZone.IsNil() && previousZone != stored.ZoneID {
			pipe.SRem(ctx, zoneMembersKey(previousZone), member)
		}
		pipe.SAdd(ctx, zoneMembersKey(stored.ZoneID), member)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("write creature: %w", err)
	}

	stored.Zone = zone
	return &stored, nil
}

func (s *RedisStore) Delete(ctx context.Context, creatureID id.CreatureID) error {
	existing, err := s.load(ctx, creatureID)
	if err != nil {
		return err
	}
	member := creatureID.String()
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, creatureKey(creatureID))
		pipe.ZRem(ctx, creatureIndexKey, member)
		pipe.SRem(ctx, zoneMembersKey(existing.ZoneID), member)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete creature: %w", err)
	}
	return nil
}

func (s *RedisStore) CountByZoneID(ctx context.Context, zoneID id.ZoneID) (int, error) {
	n, err := s.rdb.SCard(ctx, zoneMembersKey(zoneID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count creatures by zone: %w", err)
	}
	return int(n), nil
}

func (s *RedisStore) load(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error) {
	raw, err := s.rdb.Get(ctx, creatureKey(creatureID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("creature %s: %w", creatureID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get creature: %w", err)
	}
	return decodeCreature(raw)
}

func (s *RedisStore) hydrate(ctx context.Context, c *models.Creature) error {
	zone, err := s.zones.FindByID(ctx, c.ZoneID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load creature zone: %w", err)
	}
	c.Zone = zone
	return nil
}

func decodeCreature(raw []byte) (*models.Creature, error) {
	var c models.Creature
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode creature: %w", err)
	}
	return &c, nil
}
