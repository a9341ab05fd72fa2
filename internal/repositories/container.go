// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"
	"league-scheduler/internal/database"
)

// Container holds all repository instances
type Container struct {
	User            *UserRepository
	Season          *SeasonRepository
	Division        *DivisionRepository
	Team            *TeamRepository
	Venue           *VenueRepository
	Event           *EventRepository
	UserPreferences *UserPreferencesRepository
	db              *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		User:            NewUserRepository(conn.MySQL),
		Season:          NewSeasonRepository(conn.MySQL),
		Division:        NewDivisionRepository(conn.MySQL),
		Team:            NewTeamRepository(conn.MySQL),
		Venue:           NewVenueRepository(conn.MySQL),
		Event:           NewEventRepository(conn.MySQL),
		UserPreferences: NewUserPreferencesRepository(conn.MongoDB),
		db:              conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
