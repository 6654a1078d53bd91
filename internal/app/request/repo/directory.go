package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/models/m_team"
	"github.com/light-bringer/catreq-service/internal/models/m_user"
)

// Directory implements ActorDirectory for Spanner.
type Directory struct {
	client *spanner.Client
}

// NewDirectory creates a new Directory.
func NewDirectory(client *spanner.Client) contracts.ActorDirectory {
	return &Directory{client: client}
}

// Resolve retrieves a user by ID.
func (d *Directory) Resolve(ctx context.Context, userID string) (*domain.Actor, error) {
	row, err := d.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, []string{
		m_user.UserID,
		m_user.FirstName,
		m_user.LastName,
		m_user.Email,
		m_user.PhoneNumber,
		m_user.TeamID,
		m_user.ManagerID,
		m_user.IsManager,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return dataToActor(&data), nil
}

// TeamByKind retrieves the team backing a review pool.
func (d *Directory) TeamByKind(ctx context.Context, kind contracts.TeamKind) (*contracts.Team, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, %s, %s FROM %s WHERE %s = @kind LIMIT 1",
			m_team.TeamID, m_team.Name, m_team.Kind, m_team.TableName, m_team.Kind,
		),
		Params: map[string]interface{}{"kind": string(kind)},
	}

	iter := d.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to read team: %w", err)
	}

	var data m_team.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse team: %w", err)
	}

	return &contracts.Team{
		ID:   data.TeamID,
		Name: data.Name,
		Kind: contracts.TeamKind(data.Kind),
	}, nil
}

// SubordinatesOf lists the users reporting to a manager.
func (d *Directory) SubordinatesOf(ctx context.Context, managerID string) ([]*domain.Actor, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = @managerID ORDER BY %s",
			m_user.UserID, m_user.FirstName, m_user.LastName, m_user.Email,
			m_user.PhoneNumber, m_user.TeamID, m_user.ManagerID, m_user.IsManager,
			m_user.TableName, m_user.ManagerID, m_user.UserID,
		),
		Params: map[string]interface{}{"managerID": managerID},
	}

	iter := d.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var actors []*domain.Actor
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list subordinates: %w", err)
		}

		var data m_user.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse user: %w", err)
		}
		actors = append(actors, dataToActor(&data))
	}

	return actors, nil
}

// ManagersOfTeam lists the managers within a team.
func (d *Directory) ManagersOfTeam(ctx context.Context, teamID int64) ([]*domain.Actor, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = @teamID AND %s = TRUE ORDER BY %s",
			m_user.UserID, m_user.FirstName, m_user.LastName, m_user.Email,
			m_user.PhoneNumber, m_user.TeamID, m_user.ManagerID, m_user.IsManager,
			m_user.TableName, m_user.TeamID, m_user.IsManager, m_user.UserID,
		),
		Params: map[string]interface{}{"teamID": teamID},
	}

	iter := d.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var actors []*domain.Actor
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list team managers: %w", err)
		}

		var data m_user.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse user: %w", err)
		}
		actors = append(actors, dataToActor(&data))
	}

	return actors, nil
}

func dataToActor(data *m_user.Data) *domain.Actor {
	actor := &domain.Actor{
		ID:        data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		TeamID:    data.TeamID,
		IsManager: data.IsManager,
	}
	if data.PhoneNumber.Valid {
		actor.PhoneNumber = data.PhoneNumber.StringVal
	}
	if data.ManagerID.Valid {
		actor.ManagerID = &data.ManagerID.StringVal
	}
	return actor
}
