package contracts

import (
	"context"

	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// TeamKind distinguishes the three review pools a request can sit in.
type TeamKind string

const (
	TeamKindStaff      TeamKind = "staff"
	TeamKindInventory  TeamKind = "inventory_manager"
	TeamKindDepartment TeamKind = "department_manager"
)

// Team is a directory row for a review pool.
type Team struct {
	ID   int64
	Name string
	Kind TeamKind
}

// ActorDirectory defines the interface for resolving users and teams.
type ActorDirectory interface {
	// Resolve retrieves a user by ID
	Resolve(ctx context.Context, userID string) (*domain.Actor, error)

	// TeamByKind retrieves the team backing a review pool
	TeamByKind(ctx context.Context, kind TeamKind) (*Team, error)

	// SubordinatesOf lists the users reporting to a manager
	SubordinatesOf(ctx context.Context, managerID string) ([]*domain.Actor, error)

	// ManagersOfTeam lists the managers within a team
	ManagersOfTeam(ctx context.Context, teamID int64) ([]*domain.Actor, error)
}
