package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/sorteio/internal/common"
)

// AddQuotas stores quota numbers for a group and returns how many were new.
// Numbers are stored without leading zeros; repeated numbers are ignored.
func (s *SQLiteStorage) AddQuotas(ctx context.Context, groupName string, numbers []string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(groupName, "groupName"); err != nil {
		return 0, err
	}

	canonical := make([]string, 0, len(numbers))
	for _, n := range numbers {
		c, err := canonicalQuota(n)
		if err != nil {
			return 0, err
		}
		canonical = append(canonical, c)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := getGroupTx(ctx, tx, groupName); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO quotas (group_name, number) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	added := 0
	for _, n := range canonical {
		result, err := stmt.ExecContext(ctx, groupName, n)
		if err != nil {
			return 0, fmt.Errorf("failed to insert quota %s: %w", n, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to check inserted rows: %w", err)
		}
		added += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit quotas: %w", err)
	}
	return added, nil
}

// ListQuotas returns a group's quota numbers in ascending numeric order.
func (s *SQLiteStorage) ListQuotas(ctx context.Context, groupName string) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(groupName, "groupName"); err != nil {
		return nil, err
	}

	if _, err := getGroupTx(ctx, s.db, groupName); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT number
		FROM quotas
		WHERE group_name = ?
		ORDER BY length(number), number
	`, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan quota: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotas: %w", err)
	}
	return numbers, nil
}

// RemoveQuota deletes one quota number from a group.
func (s *SQLiteStorage) RemoveQuota(ctx context.Context, groupName, number string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(groupName, "groupName"); err != nil {
		return err
	}
	n, err := canonicalQuota(number)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM quotas WHERE group_name = ? AND number = ?`, groupName, n)
	if err != nil {
		return fmt.Errorf("failed to delete quota: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("quota %s in group %q: %w", n, groupName, common.ErrNotFound)
	}
	return nil
}
