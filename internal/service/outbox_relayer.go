package service

import (
	"context"
	"time"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/pkg"
	"Asamblea_Hub/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.ShiftOutbox) error

// OutboxRelayer drena la tabla shift_outbox y entrega los eventos al sender.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       *zap.Logger
}

func NewOutboxRelayer(db *gorm.DB, sender Sender, log *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		r.log.Error("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			if rerr := r.repo.RetryUpdate(ctx, ob.ID); rerr != nil {
				r.log.Error("outbox retry update failed", zap.Uint64("id", ob.ID), zap.Error(rerr))
			}
			continue
		}
		if serr := r.repo.SuccessUpdate(ctx, ob.ID); serr != nil {
			r.log.Error("outbox success update failed", zap.Uint64("id", ob.ID), zap.Error(serr))
		}
	}
}

// KafkaSender publica cada evento con el id del turno como clave.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ShiftOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.ShiftID), []byte(ob.Payload))
	}
}

// LogSender es el sender por defecto cuando no hay broker configurado.
func LogSender(log *zap.Logger) Sender {
	return func(ctx context.Context, ob *model.ShiftOutbox) error {
		log.Info("outbox send",
			zap.String("event", ob.EventType),
			zap.Uint64("shift_id", ob.ShiftID),
			zap.String("payload", ob.Payload))
		return nil
	}
}
