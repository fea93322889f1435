package postgres

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'GameResult' is the archived outcome of a finished Whist game.
 * Standings holds the final ranking as a JSON array of
 * {playerId, name, points}, best first.
 */
type GameResult struct {
	ID        string         `gorm:"primaryKey;size:36;not null"`
	RoomCode  string         `gorm:"size:10;not null;index:idx_game_results_room"`
	GameType  string         `gorm:"size:5;not null"`
	Rounds    int            `gorm:"not null"`
	Players   int            `gorm:"not null"`
	Winner    string         `gorm:"size:100"`
	EndedAt   time.Time      `gorm:"not null;index:idx_game_results_ended"`
	Standings datatypes.JSON `gorm:"type:jsonb;not null"`
}

// StandingRow is one entry of GameResult.Standings.
type StandingRow struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
}

// Every archived game gets a fresh UUID
func (r *GameResult) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Rows decodes the stored standings.
func (r *GameResult) Rows() ([]StandingRow, error) {
	var rows []StandingRow
	if len(r.Standings) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(r.Standings, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
