package m_team

// Field name constants for the teams table.
const (
	TableName = "teams"

	TeamID = "team_id"
	Name   = "name"
	Kind   = "kind"
)

// Team kind constants. Each approval tier owns requests at one stage of the
// workflow.
const (
	KindStaff      = "staff"
	KindInventory  = "inventory_manager"
	KindDepartment = "department_manager"
)
