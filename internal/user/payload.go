package user

// UpdateReq is a partial update: nil fields are retained.
type UpdateReq struct {
	Name           *string     `json:"name"`
	Username       *string     `json:"username"`
	Email          *string     `json:"email"`
	ProfilePicture *string     `json:"profile_picture"`
	Bio            *string     `json:"bio"`
	Privacy        *PrivacyReq `json:"privacy"`
}

// PrivacyReq updates the two privacy tiers independently: a present field
// overwrites, an absent field retains the stored tier.
type PrivacyReq struct {
	Profile *string `json:"profile"`
	Posts   *string `json:"posts"`
}
