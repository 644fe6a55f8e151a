package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	ID               string         `db:"ID"`
	EloOverall       int            `db:"ELO_OVERALL"`
	EloPreflop       int            `db:"ELO_PREFLOP"`
	EloFlop          int            `db:"ELO_FLOP"`
	EloTurn          int            `db:"ELO_TURN"`
	EloRiver         int            `db:"ELO_RIVER"`
	Streak           int            `db:"STREAK"`
	LastActivityDate sql.NullString `db:"LAST_ACTIVITY_DATE"` // YYYY-MM-DD
	CreatedAt        time.Time      `db:"CREATED_AT"`
}

