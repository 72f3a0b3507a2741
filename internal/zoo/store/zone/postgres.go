package zone

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

// PostgresStore persists zones in the zones table. Name uniqueness is enforced
// by the zones_name_key constraint, so concurrent creates race safely.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const zoneColumns = `id, name, description, capacity, created_at, updated_at`

func (s *PostgresStore) FindByID(ctx context.Context, zoneID id.ZoneID) (*models.Zone, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = $1`, int64(zoneID))
	z, err := scanZone(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("zone %s: %w", zoneID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find zone by id: %w", err)
	}
	return z, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Zone, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+zoneColumns+` FROM zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()

	var zones []*models.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate zones: %w", err)
	}
	return zones, nil
}

// Save inserts z when it has no id and updates it otherwise.
func (s *PostgresStore) Save(ctx context.Context, z *models.Zone) (*models.Zone, error) {
	stored := *z
	if stored.ID.IsNil() {
		var newID int64
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO zones (name, description, capacity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, stored.Name, stored.Description, stored.Capacity, stored.CreatedAt, stored.UpdatedAt).Scan(&newID)
		if err != nil {
			return nil, translateWriteErr(err, stored.Name)
		}
		stored.ID = id.ZoneID(newID)
		return &stored, nil
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE zones
		SET name = $2, description = $3, capacity = $4, updated_at = $5
		WHERE id = $1
	`, int64(stored.ID), stored.Name, stored.Description, stored.Capacity, stored.UpdatedAt)
	if err != nil {
		return nil, translateWriteErr(err, stored.Name)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update zone rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("zone %s: %w", stored.ID, sentinel.ErrNotFound)
	}
	return &stored, nil
}

func (s *PostgresStore) Delete(ctx context.Context, zoneID id.ZoneID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM zones WHERE id = $1`, int64(zoneID))
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return fmt.Errorf("zone %s still referenced: %w", zoneID, sentinel.ErrInvalidState)
		}
		return fmt.Errorf("delete zone: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete zone rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, sentinel.ErrNotFound)
	}
	return nil
}

func translateWriteErr(err error, name string) error {
	if pgerr.IsUniqueViolation(err) {
		return fmt.Errorf("zone name %q: %w", name, sentinel.ErrAlreadyUsed)
	}
	return fmt.Errorf("save zone: %w", err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanZone(row scanner) (*models.Zone, error) {
	var (
		z      models.Zone
		zoneID int64
	)
	if err := row.Scan(&zoneID, &z.Name, &z.Description, &z.Capacity, &z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}
	z.ID = id.ZoneID(zoneID)
	return &z, nil
}
