package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// List returns every team ordered by id.
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
