package participants

import (
	"context"
	"errors"

	"gorm.io/gorm"

	participantsdomain "smata-ledger/internal/domain/participants"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]participantsdomain.Participant, error) {
	var items []participantsdomain.Participant
	if err := r.db.WithContext(ctx).
		Order("join_date desc, created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, participantID string) (*participantsdomain.Participant, error) {
	var participant participantsdomain.Participant
	if err := r.db.WithContext(ctx).
		Where("id = ?", participantID).
		First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, participantsdomain.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (r *PostgresRepository) Create(ctx context.Context, participant *participantsdomain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *PostgresRepository) Update(ctx context.Context, participant *participantsdomain.Participant) error {
	return r.db.WithContext(ctx).
		Model(&participantsdomain.Participant{}).
		Where("id = ?", participant.ID).
		Updates(map[string]interface{}{
			"name":   participant.Name,
			"phone":  participant.Phone,
			"notes":  participant.Notes,
			"active": participant.Active,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, participantID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&participantsdomain.Participant{}, "id = ?", participantID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&participantsdomain.Participant{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists satisfies the payment ledger's participant reference check.
func (r *PostgresRepository) Exists(ctx context.Context, participantID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&participantsdomain.Participant{}).
		Where("id = ?", participantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
