// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageStatus string

const (
	// StatusSent is the only lifecycle state a stored message can have:
	// rows are only written after the provider accepted the delivery.
	StatusSent MessageStatus = "sent"
)

// Message is a single outbound SMS record. Rows are append-only; no update
// or delete path exists anywhere in the service.
type Message struct {
	ID        string        `gorm:"primaryKey;size:36"`
	Recipient string        `gorm:"size:32;not null"`
	Content   string        `gorm:"type:text;not null"`
	Status    MessageStatus `gorm:"size:16;not null"`
	CreatedAt time.Time
	UserID    uint
	User      User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (message *Message) BeforeCreate(tx *gorm.DB) (err error) {
	message.ID = uuid.New().String()
	return
}

func init() {
	AllModels = append(AllModels, &Message{})
}
