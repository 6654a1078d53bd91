package m_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			UserID,
			FirstName,
			LastName,
			Email,
			PhoneNumber,
			TeamID,
			ManagerID,
			IsManager,
		},
		[]interface{}{
			data.UserID,
			data.FirstName,
			data.LastName,
			data.Email,
			data.PhoneNumber,
			data.TeamID,
			data.ManagerID,
			data.IsManager,
		},
	)
}
