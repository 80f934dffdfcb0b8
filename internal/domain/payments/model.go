package payments

import "time"

type Payment struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	ParticipantID string    `gorm:"type:uuid;index;not null"`
	Date          time.Time `gorm:"type:date;not null"`
	Amount        float64   `gorm:"type:numeric(14,2);not null"`
	Method        *string   `gorm:"type:text"`
	Note          *string   `gorm:"type:text"`
	RecordedAt    time.Time `gorm:"autoCreateTime"`
}

type ListFilter struct {
	ParticipantID string
	From          *time.Time
	To            *time.Time
}

type CreateInput struct {
	ParticipantID string
	Date          time.Time
	Amount        float64
	Method        *string
	Note          *string
}

type UpdateInput struct {
	ID            string
	ParticipantID string
	Date          time.Time
	Amount        float64
	Method        *string
	Note          *string
}
