package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	Recipes []*Recipe `gorm:"foreignKey:AuthorID"`
	Timestamp
}

type Subscription struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex:idx_user_subscribing" json:"user_id"`
	SubscribingID uuid.UUID `gorm:"uniqueIndex:idx_user_subscribing" json:"subscribing_id"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	User        *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Subscribing *User `gorm:"foreignKey:SubscribingID;constraint:OnDelete:CASCADE"`
}
