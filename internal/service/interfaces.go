// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/sorteio/internal/model"
)

// QuotaStore keeps the participant's consortium groups and the quotas held in each.
// Draw results are never stored.
type QuotaStore interface {
	// Group operations
	SaveGroup(ctx context.Context, group *model.Group) error
	GetGroup(ctx context.Context, name string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]model.Group, error)
	DeleteGroup(ctx context.Context, name string) error

	// Quota operations
	AddQuotas(ctx context.Context, groupName string, numbers []string) (int, error)
	ListQuotas(ctx context.Context, groupName string) ([]string, error)
	RemoveQuota(ctx context.Context, groupName, number string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
