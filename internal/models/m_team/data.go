package m_team

// Data represents the database model for the teams table.
type Data struct {
	TeamID int64  `spanner:"team_id"`
	Name   string `spanner:"name"`
	Kind   string `spanner:"kind"`
}
