// Package storage provides the data persistence layer for the participant's groups and quotas.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/sorteio/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidGroup = errors.New("invalid group")
	ErrInvalidQuota = errors.New("invalid quota")
)

// Group size bounds enforced by the schema.
const (
	minGroupSize = 2
	maxGroupSize = 10000
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateGroup validates a group before it is saved.
func validateGroup(group *model.Group) error {
	if group == nil {
		return fmt.Errorf("%w: group", ErrNilParameter)
	}
	if strings.TrimSpace(group.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGroup)
	}
	if group.Size < minGroupSize || group.Size > maxGroupSize {
		return fmt.Errorf("%w: size must be between %d and %d, got %d",
			ErrInvalidGroup, minGroupSize, maxGroupSize, group.Size)
	}
	return nil
}

// canonicalQuota validates a quota number and strips its leading zeros, so
// "070" and "70" are stored once. Padding is applied at check time from the
// group's rule.
func canonicalQuota(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", fmt.Errorf("%w: empty number", ErrInvalidQuota)
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return "", fmt.Errorf("%w: %q is not a number", ErrInvalidQuota, number)
		}
	}
	if trimmed := strings.TrimLeft(number, "0"); trimmed != "" {
		return trimmed, nil
	}
	return "0", nil
}
