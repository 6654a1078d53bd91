package m_user

import "cloud.google.com/go/spanner"

// Data represents the database model for the users table.
type Data struct {
	UserID      string             `spanner:"user_id"`
	FirstName   string             `spanner:"first_name"`
	LastName    string             `spanner:"last_name"`
	Email       string             `spanner:"email"`
	PhoneNumber spanner.NullString `spanner:"phone_number"`
	TeamID      int64              `spanner:"team_id"`
	ManagerID   spanner.NullString `spanner:"manager_id"`
	IsManager   bool               `spanner:"is_manager"`
}
