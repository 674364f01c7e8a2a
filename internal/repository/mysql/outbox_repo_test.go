package mysql

import (
	"context"
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRetry_MarksFailedAfterMax(t *testing.T) {
	db := newTestDB(t)
	repo := &OutboxRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ShiftOutbox{ID: 1, EventType: "assigned", ShiftID: 1, Payload: "{}"}).Error)

	for i := 0; i < outboxMaxRetry; i++ {
		rows, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NoError(t, repo.RetryUpdate(ctx, rows[0].ID))
	}

	// tras agotar los reintentos el evento queda fallido y fuera del lote
	rows, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	var row model.ShiftOutbox
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, int8(2), row.Status)
	assert.Equal(t, outboxMaxRetry, row.Retry)
}

func TestOutboxSuccess_RemovesFromBatch(t *testing.T) {
	db := newTestDB(t)
	repo := &OutboxRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ShiftOutbox{ID: 1, EventType: "rejected", ShiftID: 1, Payload: "{}"}).Error)
	require.NoError(t, db.Create(&model.ShiftOutbox{ID: 2, EventType: "assigned", ShiftID: 2, Payload: "{}"}).Error)

	require.NoError(t, repo.SuccessUpdate(ctx, 1))

	rows, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].ID)
}
