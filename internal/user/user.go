package user

import (
	"time"

	"socialnet/internal/privacy"
)

type User struct {
	ID             string       `gorm:"primaryKey;size:64" json:"id"`
	Name           string       `gorm:"size:120" json:"name"`
	Username       string       `gorm:"uniqueIndex;size:120" json:"username"`
	Email          string       `gorm:"uniqueIndex;size:255" json:"email"`
	Password       string       `gorm:"size:255" json:"-"`
	ProfilePicture string       `gorm:"size:512" json:"profile_picture"`
	Bio            string       `gorm:"size:512" json:"bio"`
	PrivacyProfile privacy.Tier `gorm:"size:16;default:public" json:"privacy_profile"`
	PrivacyPosts   privacy.Tier `gorm:"size:16;default:public" json:"privacy_posts"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Summary is the shape embedded in listings and resolved references.
type Summary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Name: u.Name}
}
