package service

import (
	"context"
	"errors"
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRelayerDrain_MarksSent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.ShiftOutbox{ID: 1, EventType: "assigned", ShiftID: 1, Payload: "{}"}).Error)

	var delivered []uint64
	sender := func(ctx context.Context, ob *model.ShiftOutbox) error {
		delivered = append(delivered, ob.ShiftID)
		return nil
	}

	relayer := NewOutboxRelayer(db, sender, zap.NewNop())
	relayer.drainOnce(context.Background())

	assert.Equal(t, []uint64{1}, delivered)

	var row model.ShiftOutbox
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, int8(1), row.Status)
}

func TestRelayerDrain_RetriesFailedSend(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.ShiftOutbox{ID: 1, EventType: "rejected", ShiftID: 1, Payload: "{}"}).Error)

	sender := func(ctx context.Context, ob *model.ShiftOutbox) error {
		return errors.New("broker down")
	}

	relayer := NewOutboxRelayer(db, sender, zap.NewNop())
	relayer.drainOnce(context.Background())

	// el evento sigue pendiente con un reintento anotado
	var row model.ShiftOutbox
	require.NoError(t, db.First(&row, 1).Error)
	assert.Equal(t, int8(0), row.Status)
	assert.Equal(t, 1, row.Retry)
}
