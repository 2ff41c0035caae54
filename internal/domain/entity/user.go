package entity

// User represents an authenticated principal (customer or staff).
// CreatedAt stays an RFC3339 string because that is exactly what the
// persisted session record stores and what restore must reproduce.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt"`
}
