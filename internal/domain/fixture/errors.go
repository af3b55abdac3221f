package fixture

import "github.com/cockroachdb/errors"

var (
	ErrInvalidTeamCount = errors.New("fixture generation requires exactly 4 teams")
	ErrFixtureNotFound  = errors.New("fixture not found")
	ErrMatchNotFound    = errors.New("match not found")
)
