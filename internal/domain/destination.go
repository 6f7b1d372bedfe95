package domain

import "time"

// Destination is an outbound HTTP endpoint registered under exactly one
// account. Headers are stored as a JSON column and sent verbatim on relay.
type Destination struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	AccountID  uint              `gorm:"not null;index" json:"account_id"`
	URL        string            `gorm:"size:2048;not null" json:"url"`
	HTTPMethod string            `gorm:"size:16;not null" json:"http_method"`
	Headers    map[string]string `gorm:"serializer:json" json:"headers"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
