package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID      = "user_id"
	FirstName   = "first_name"
	LastName    = "last_name"
	Email       = "email"
	PhoneNumber = "phone_number"
	TeamID      = "team_id"
	ManagerID   = "manager_id"
	IsManager   = "is_manager"
)
