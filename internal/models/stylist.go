package models

import "time"

// Stylist is the profile row owned by users with role "stylist". It carries
// no mutable fields of its own yet; its value is the reverse relation to the
// clients that picked it.
type Stylist struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"uniqueIndex;not null" json:"user_id"`
	User   *User `json:"user,omitempty"`

	Clients []Client `gorm:"foreignKey:StylistID" json:"clients,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
