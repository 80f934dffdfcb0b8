package payments

import (
	"context"
	"errors"

	"gorm.io/gorm"

	paymentsdomain "smata-ledger/internal/domain/payments"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter paymentsdomain.ListFilter) ([]paymentsdomain.Payment, error) {
	query := r.db.WithContext(ctx).Model(&paymentsdomain.Payment{})
	if filter.ParticipantID != "" {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	var items []paymentsdomain.Payment
	if err := query.Order("date desc, recorded_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, paymentID string) (*paymentsdomain.Payment, error) {
	var payment paymentsdomain.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ?", paymentID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentsdomain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) Create(ctx context.Context, payment *paymentsdomain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PostgresRepository) Update(ctx context.Context, payment *paymentsdomain.Payment) error {
	return r.db.WithContext(ctx).
		Model(&paymentsdomain.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"participant_id": payment.ParticipantID,
			"date":           payment.Date,
			"amount":         payment.Amount,
			"method":         payment.Method,
			"note":           payment.Note,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, paymentID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&paymentsdomain.Payment{}, "id = ?", paymentID)
	return result.RowsAffected > 0, result.Error
}
