package sync

import (
	redis_models "Whist/models/redis"
	"Whist/models/postgres"
	"Whist/services/game"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyncManager copies finished games from Redis into PostgreSQL, where they outlive
// the room TTL.
type SyncManager struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(db *gorm.DB, logger *slog.Logger) *SyncManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncManager{db: db, logger: logger, now: time.Now}
}

// ArchiveGame stores the final standings of an ended room.
func (sm *SyncManager) ArchiveGame(ctx context.Context, room *redis_models.Room) error {
	if !room.Ended {
		return fmt.Errorf("room %s has not ended", room.ID)
	}

	standings := game.Standings(room)
	data, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("error marshaling standings: %w", err)
	}

	result := postgres.GameResult{
		RoomCode:  room.ID,
		GameType:  string(room.Type),
		Rounds:    room.Round,
		Players:   len(room.Players),
		EndedAt:   sm.now().UTC(),
		Standings: datatypes.JSON(data),
	}
	if len(standings) > 0 {
		result.Winner = standings[0].Name
	}

	if err := sm.db.WithContext(ctx).Create(&result).Error; err != nil {
		return fmt.Errorf("error archiving room %s: %w", room.ID, err)
	}
	sm.logger.Info("game archived", "room", room.ID, "result", result.ID, "winner", result.Winner)
	return nil
}

// ListResults returns the archived games played under a room code, newest first.
func (sm *SyncManager) ListResults(ctx context.Context, roomCode string) ([]postgres.GameResult, error) {
	var results []postgres.GameResult
	err := sm.db.WithContext(ctx).
		Where("room_code = ?", roomCode).
		Order("ended_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("error listing results of room %s: %w", roomCode, err)
	}
	return results, nil
}
