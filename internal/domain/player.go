package domain

// Player is a roster entry referencing a Role by ID. The reference is
// checked on create and update, but deleting a role does not cascade, so a
// stored RoleID may be dangling.
type Player struct {
	ID                string `json:"id"`
	MinecraftUsername string `json:"minecraft_username"`
	RoleID            string `json:"role_id"`
	Status            string `json:"status"`
	Description       string `json:"description"`
	CreatedAt         string `json:"created_at"`
}

// PlayerCreate holds the fields required to create a player.
type PlayerCreate struct {
	MinecraftUsername string `json:"minecraft_username"`
	RoleID            string `json:"role_id"`
	Status            string `json:"status"`
	Description       string `json:"description"`
}

// PlayerUpdate is a partial update: nil fields leave the stored value untouched.
type PlayerUpdate struct {
	MinecraftUsername *string `json:"minecraft_username"`
	RoleID            *string `json:"role_id"`
	Status            *string `json:"status"`
	Description       *string `json:"description"`
}

// Apply copies the populated fields onto p.
func (u PlayerUpdate) Apply(p *Player) {
	if u.MinecraftUsername != nil {
		p.MinecraftUsername = *u.MinecraftUsername
	}
	if u.RoleID != nil {
		p.RoleID = *u.RoleID
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
}
