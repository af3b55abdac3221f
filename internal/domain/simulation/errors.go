package simulation

import "github.com/cockroachdb/errors"

var ErrUnknownTeam = errors.New("match references unknown team")
