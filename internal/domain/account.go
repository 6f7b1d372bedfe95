package domain

import "time"

// Account is a tenant that owns destinations and authenticates inbound
// data with its app secret token. The token column is intentionally not
// unique; lookups resolve collisions by lowest id.
type Account struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Email          string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	AccountID      string        `gorm:"uniqueIndex;size:64;not null" json:"account_id"`
	AccountName    string        `gorm:"size:255;not null" json:"account_name"`
	AppSecretToken string        `gorm:"size:128;index;not null" json:"app_secret_token"`
	Website        string        `gorm:"size:512" json:"website,omitempty"`
	Destinations   []Destination `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"destinations,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
