package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null" json:"role"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	// Profile rows, loaded explicitly by the account repository depending on
	// the user's role. At most one of them is ever non-nil.
	Client  *Client  `json:"client,omitempty"`
	Stylist *Stylist `json:"stylist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
