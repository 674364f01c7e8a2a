package mysql

import (
	"context"

	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
)

// Tras demasiados reintentos el evento se marca fallido y deja de relanzarse.
const outboxMaxRetry = 5

type OutboxRepository struct {
	DB *gorm.DB
}

// List devuelve los eventos pendientes más antiguos, hasta batch.
func (r *OutboxRepository) List(ctx context.Context, batch int) ([]model.ShiftOutbox, error) {
	var rows []model.ShiftOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id").
		Limit(batch).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ShiftOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	db := r.DB.WithContext(ctx).Model(&model.ShiftOutbox{})
	if err := db.Where("id = ?", id).
		Update("retry", gorm.Expr("retry + 1")).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Model(&model.ShiftOutbox{}).
		Where("id = ? AND retry >= ?", id, outboxMaxRetry).
		Update("status", 2).Error
}
