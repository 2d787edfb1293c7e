// Package storage holds the evidence blob store drivers.
package storage

import (
	"fmt"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// ErrNotFound is returned by drivers when no blob exists under a key.
// It matches domain.ErrNotFound.
var ErrNotFound = fmt.Errorf("blob %w", domain.ErrNotFound)
