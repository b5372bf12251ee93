package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"meansassess/internal/uuid"
)

// ErrInvalidID is returned when a record is created with a preset ID that is
// not a UUID.
var ErrInvalidID = errors.New("id is not a uuid")

// Base carries the columns every assessment table shares. IDs are UUIDv7, so
// they also sort rows by creation time.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a fresh ID. A preset ID is kept in canonical
// lower-case form so lookups by the value clients echo back still match.
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
		return nil
	}

	id, err := uuid.Parse(b.ID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, b.ID)
	}
	b.ID = id
	return nil
}
