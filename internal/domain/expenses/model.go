package expenses

import (
	"strings"
	"time"
)

type Expense struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	Amount     float64   `gorm:"type:numeric(14,2);not null"`
	Date       time.Time `gorm:"type:date;not null"`
	Category   Category  `gorm:"type:text;not null"`
	RecordedAt time.Time `gorm:"autoCreateTime"`
}

type Category string

const (
	CategoryRental     Category = "rental"
	CategoryRefereeing Category = "refereeing"
	CategoryEquipment  Category = "equipment"
	CategoryOther      Category = "other"
)

// ParseCategory maps free-form input onto the category enum.
func ParseCategory(value string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryRental:
		return CategoryRental, true
	case CategoryRefereeing:
		return CategoryRefereeing, true
	case CategoryEquipment:
		return CategoryEquipment, true
	case CategoryOther:
		return CategoryOther, true
	}
	return "", false
}

type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Category Category
}

type CreateInput struct {
	Name     string
	Amount   float64
	Date     time.Time
	Category string
}

type UpdateInput struct {
	ID       string
	Name     string
	Amount   float64
	Date     time.Time
	Category string
}
