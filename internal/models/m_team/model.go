package m_team

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the teams table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a team.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{TeamID, Name, Kind},
		[]interface{}{data.TeamID, data.Name, data.Kind},
	)
}
