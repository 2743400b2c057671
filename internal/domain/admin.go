package domain

// Admin is an authentication account. Admins are seeded at bootstrap and are
// not managed through the API.
type Admin struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
