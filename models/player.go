package models

type Player struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Active    bool   `json:"active" db:"active"`
}

// FullName is used by match detail views and ranking rows.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
