package models

import "time"

// Client is the profile row owned by users with role "client". The unique
// index on user_id keeps it one-per-user at the store level, not only in the
// registration handler.
type Client struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"uniqueIndex;not null" json:"user_id"`
	User   *User `json:"user,omitempty"`

	StylistID *uint    `json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	Country          string    `gorm:"size:100" json:"country"`
	City             string    `gorm:"size:100" json:"city"`
	BodyType         string    `gorm:"size:100" json:"body_type"`
	Colors           ColorList `gorm:"type:text" json:"colors"`
	MessageToStylist string    `gorm:"size:1000" json:"message_to_stylist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
