package creature

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"menagerie/internal/zoo/models"
	"menagerie/internal/zoo/store/pgerr"
	id "menagerie/pkg/domain"
	"menagerie/pkg/platform/sentinel"
)

// PostgresStore persists creatures in the creatures table and hydrates the
// zone reference with a join.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectCreature = `
	SELECT c.id, c.name, c.species, c.size, c.danger_level, c.health_status, c.zone_id,
	       c.created_at, c.updated_at,
	       z.id, z.name, z.description, z.capacity, z.created_at, z.updated_at
	FROM creatures c
	JOIN zones z ON z.id = c.zone_id`

func (s *PostgresStore) FindByID(ctx context.Context, creatureID id.CreatureID) (*models.Creature, error) {
	row := s.db.QueryRowContext(ctx, selectCreature+` WHERE c.id = $1`, int64(creatureID))
	c, err := scanCreature(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("creature %s: %w", creatureID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find creature by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Creature, error) {
	rows, err := s.db.QueryContext(ctx, selectCreature+` ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list creatures: %w", err)
	}
	defer rows.Close()

	var creatures []*models.Creature
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creature: %w", err)
		}
		creatures = append(creatures, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate creatures: %w", err)
	}
	return creatures, nil
}

// Save inserts c when it has no id and updates it otherwise, then reloads it
// so the returned creature carries the current zone row.
func (s *PostgresStore) Save(ctx context.Context, c *models.Creature) (*models.Creature, error) {
	creatureID := c.ID
	if creatureID.IsNil() {
		var newID int64
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO creatures (name, species, size, danger_level, health_status, zone_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, c.Name, c.Species, c.Size, c.DangerLevel, c.HealthStatus, int64(c.ZoneID), c.CreatedAt, c.UpdatedAt).Scan(&newID)
		if err != nil {
			return nil, translateWriteErr(err, c.ZoneID)
		}
		creatureID = id.CreatureID(newID)
	} else {
		res, err := s.db.ExecContext(ctx, `
			UPDATE creatures
			SET name = $2, species = $3, size = $4, danger_level = $5, health_status = $6,
			    zone_id = $7, updated_at = $8
			WHERE id = $1
		`, int64(c.ID), c.Name, c.Species, c.Size, c.DangerLevel, c.HealthStatus, int64(c.ZoneID), c.UpdatedAt)
		if err != nil {
			return nil, translateWriteErr(err, c.ZoneID)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("update creature rows affected: %w", err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("creature %s: %w", c.ID, sentinel.ErrNotFound)
		}
	}
	return s.FindByID(ctx, creatureID)
}

func (s *PostgresStore) Delete(ctx context.Context, creatureID id.CreatureID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM creatures WHERE id = $1`, int64(creatureID))
	if err != nil {
		return fmt.Errorf("delete creature: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete creature rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("creature %s: %w", creatureID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) CountByZoneID(ctx context.Context, zoneID id.ZoneID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM creatures WHERE zone_id = $1`, int64(zoneID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count creatures by zone: %w", err)
	}
	return count, nil
}

func translateWriteErr(err error, zoneID id.ZoneID) error {
	if pgerr.IsForeignKeyViolation(err) {
		return fmt.Errorf("creature zone %s: %w", zoneID, sentinel.ErrInvalidState)
	}
	return fmt.Errorf("save creature: %w", err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCreature(row scanner) (*models.Creature, error) {
	var (
		c                  models.Creature
		z                  models.Zone
		creatureID, zoneID int64
		joinedZoneID       int64
	)
	err := row.Scan(
		&creatureID, &c.Name, &c.Species, &c.Size, &c.DangerLevel, &c.HealthStatus, &zoneID,
		&c.CreatedAt, &c.UpdatedAt,
		&joinedZoneID, &z.Name, &z.Description, &z.Capacity, &z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ID = id.CreatureID(creatureID)
	z.ID = id.ZoneID(joinedZoneID)
	c.ZoneID = id.ZoneID(zoneID)
	c.Zone = &z
	return &c, nil
}
