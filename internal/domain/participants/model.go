package participants

import (
	"strings"
	"time"
	"unicode"
)

type Participant struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     *string   `gorm:"type:text"`
	Notes     *string   `gorm:"type:text"`
	Active    bool      `gorm:"not null;default:true"`
	JoinDate  time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type ListFilter struct {
	ActiveOnly bool
	Search     string
}

type CreateInput struct {
	Name     string
	Phone    *string
	Notes    *string
	JoinDate time.Time
}

type UpdateInput struct {
	ID    string
	Name  string
	Phone *string
	Notes *string
}

// NormalizeName converts a free-text name to its title-case display form:
// "juan  PEREZ" -> "Juan Perez".
func NormalizeName(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
