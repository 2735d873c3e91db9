package outboxrepo_test

import (
	"testing"
	"time"

	"hyperlocal/internal/adapters/out/postgres/outboxrepo"
	"hyperlocal/internal/adapters/out/postgres/testdb"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository(t *testing.T) {
	db := testdb.NewSQLite(t)
	repo := outboxrepo.NewGormOutboxRepository(db)
	ctx := t.Context()

	base := time.Now().Add(-time.Minute)
	var ids []kernel.UUID
	for i := range 3 {
		m := ports.OutboxMessage{
			ID:          kernel.NewUUID(),
			EventType:   "order.placed",
			AggregateID: kernel.NewUUID(),
			Payload:     []byte(`{}`),
			OccurredAt:  base.Add(time.Duration(i) * time.Second),
		}
		dto := outboxrepo.FromMessage(m)
		require.NoError(t, db.Create(&dto).Error)
		ids = append(ids, m.ID)
	}

	batch, err := repo.GetUnpublished(ctx, 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, ids[0], batch[0].ID)
	assert.Equal(t, ids[1], batch[1].ID)

	require.NoError(t, repo.MarkPublished(ctx, []kernel.UUID{batch[0].ID, batch[1].ID}, time.Now()))

	rest, err := repo.GetUnpublished(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[2], rest[0].ID)

	require.NoError(t, repo.MarkPublished(ctx, nil, time.Now()))
}
