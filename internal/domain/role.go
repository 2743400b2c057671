package domain

// Role is a staff role displayed on the public roster, sorted by Order.
type Role struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Order     int    `json:"order"`
	CreatedAt string `json:"created_at"`
}

// RoleCreate holds the fields required to create a role.
// Order is a pointer so a missing field can be told apart from zero.
type RoleCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Order *int   `json:"order"`
}

// RoleUpdate is a partial update: nil fields leave the stored value untouched.
type RoleUpdate struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Order *int    `json:"order"`
}

// Apply copies the populated fields onto r.
func (u RoleUpdate) Apply(r *Role) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Color != nil {
		r.Color = *u.Color
	}
	if u.Order != nil {
		r.Order = *u.Order
	}
}
