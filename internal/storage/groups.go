package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/model"
)

// SaveGroup creates a group or updates the size of an existing one.
func (s *SQLiteStorage) SaveGroup(ctx context.Context, group *model.Group) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGroup(group); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO consortium_groups (name, size) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET size = excluded.size
	`, group.Name, group.Size)
	if err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by name. It returns common.ErrNotFound when the
// group does not exist.
func (s *SQLiteStorage) GetGroup(ctx context.Context, name string) (*model.Group, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	return getGroupTx(ctx, s.db, name)
}

func getGroupTx(ctx context.Context, q queryable, name string) (*model.Group, error) {
	var group model.Group
	err := q.QueryRowContext(ctx, `
		SELECT name, size, created_at
		FROM consortium_groups
		WHERE name = ?
	`, name).Scan(&group.Name, &group.Size, &group.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// ListGroups returns all groups ordered by name.
func (s *SQLiteStorage) ListGroups(ctx context.Context) ([]model.Group, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, size, created_at
		FROM consortium_groups
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []model.Group
	for rows.Next() {
		var group model.Group
		if err := rows.Scan(&group.Name, &group.Size, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// DeleteGroup removes a group together with its quotas.
func (s *SQLiteStorage) DeleteGroup(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quotas WHERE group_name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete quotas: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM consortium_groups WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("group %q: %w", name, common.ErrNotFound)
	}

	return tx.Commit()
}
