// Package pgerr classifies driver errors independently of the SQL backend in use.
package pgerr

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique constraint, whether raised by
// PostgreSQL through lib/pq, translated by GORM, or raised by SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
