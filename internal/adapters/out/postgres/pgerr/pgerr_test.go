package pgerr_test

import (
	"fmt"
	"testing"

	"hyperlocal/internal/adapters/out/postgres/pgerr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"pq unique", &pq.Error{Code: "23505"}, true},
		{"pq other", &pq.Error{Code: "23503"}, false},
		{"sqlite", fmt.Errorf("UNIQUE constraint failed: users.email"), true},
		{"unrelated", gorm.ErrRecordNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerr.IsUniqueViolation(tt.err))
		})
	}
}
