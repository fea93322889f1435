package redis

import (
	redis_models "Whist/models/redis"
	redis_utils "Whist/services/redis/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRoomTTL is applied when no TTL is configured.
const DefaultRoomTTL = 24 * time.Hour

// Room hash fields
const (
	fieldRound   = "round"
	fieldCards   = "cardsThisRound"
	fieldStarted = "started"
	fieldEnded   = "ended"
	fieldType    = "type"
	fieldTrump   = "atu"
	fieldOwner   = "ownerId"
)

// Player hash fields
const (
	fieldID              = "id"
	fieldIndex           = "index"
	fieldIndexThisRound  = "indexThisRound"
	fieldName            = "name"
	fieldPoints          = "points"
	fieldPointsThisRound = "pointsThisRound"
	fieldVoted           = "voted"
	fieldHand            = "cards"
	fieldLastCardPlayed  = "lastCardPlayed"
)

// RedisClient stores Whist rooms. Every key it writes expires after ttl.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a client for a redis:// URL or a plain host:port address.
func NewRedisClient(addr string, db int, ttl time.Duration) (*RedisClient, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return FromClient(client, ttl), nil
}

// FromClient wraps an existing go-redis client.
func FromClient(client *redis.Client, ttl time.Duration) *RedisClient {
	if ttl <= 0 {
		ttl = DefaultRoomTTL
	}
	return &RedisClient{client: client, ttl: ttl}
}

// Ping checks that the server answers.
func (rc *RedisClient) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// CreateRoom claims the room code with HSETNX on the type field, then writes the
// remaining fields. It reports false when the code was already in use.
func (rc *RedisClient) CreateRoom(ctx context.Context, room *redis_models.Room) (bool, error) {
	key := redis_utils.FormatRoomKey(room.ID)
	claimed, err := rc.client.HSetNX(ctx, key, fieldType, string(room.Type)).Result()
	if err != nil {
		return false, fmt.Errorf("error claiming room %s: %w", room.ID, err)
	}
	if !claimed {
		return false, nil
	}

	_, err = rc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, roomFields(room))
		pipe.Expire(ctx, key, rc.ttl)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error creating room %s: %w", room.ID, err)
	}
	return true, nil
}

// LoadRoom reads the room and all of its players, sorted by seat.
// It returns nil, nil when the room does not exist.
func (rc *RedisClient) LoadRoom(ctx context.Context, roomID string) (*redis_models.Room, error) {
	fields, err := rc.client.HGetAll(ctx, redis_utils.FormatRoomKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting room %s: %w", roomID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	room, err := parseRoom(roomID, fields)
	if err != nil {
		return nil, err
	}

	ids, err := rc.client.SMembers(ctx, redis_utils.FormatRoomUsersKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting users of room %s: %w", roomID, err)
	}
	if len(ids) == 0 {
		return room, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = rc.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error getting users of room %s: %w", roomID, err)
	}

	for i, cmd := range cmds {
		values := cmd.Val()
		if len(values) == 0 {
			return nil, fmt.Errorf("user %s of room %s has no data", ids[i], roomID)
		}
		player, err := parsePlayer(values)
		if err != nil {
			return nil, fmt.Errorf("user %s of room %s: %w", ids[i], roomID, err)
		}
		room.Players = append(room.Players, player)
	}
	room.SortBySeat()
	return room, nil
}

// AddPlayer registers player in the room's user set and writes its hash. The set
// membership makes the name unique: false is returned when it was already taken.
func (rc *RedisClient) AddPlayer(ctx context.Context, roomID string, player *redis_models.Player, owner bool) (bool, error) {
	usersKey := redis_utils.FormatRoomUsersKey(roomID)
	added, err := rc.client.SAdd(ctx, usersKey, player.ID).Result()
	if err != nil {
		return false, fmt.Errorf("error adding user %s: %w", player.ID, err)
	}
	if added == 0 {
		return false, nil
	}

	roomKey := redis_utils.FormatRoomKey(roomID)
	_, err = rc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, player.ID, playerFields(player))
		pipe.Expire(ctx, player.ID, rc.ttl)
		pipe.Expire(ctx, usersKey, rc.ttl)
		if owner {
			pipe.HSetNX(ctx, roomKey, fieldOwner, player.ID)
		}
		return nil
	})
	if err != nil {
		rc.client.SRem(ctx, usersKey, player.ID)
		return false, fmt.Errorf("error saving user %s: %w", player.ID, err)
	}
	return true, nil
}

// SaveRoom writes the room hash and every player hash in a single MULTI/EXEC.
func (rc *RedisClient) SaveRoom(ctx context.Context, room *redis_models.Room) error {
	roomKey := redis_utils.FormatRoomKey(room.ID)
	_, err := rc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, roomKey, roomFields(room))
		if room.Trump == "" {
			pipe.HDel(ctx, roomKey, fieldTrump)
		}
		pipe.Expire(ctx, roomKey, rc.ttl)

		for _, p := range room.Players {
			pipe.HSet(ctx, p.ID, playerFields(p))
			if p.Bid == nil {
				pipe.HDel(ctx, p.ID, fieldVoted)
			}
			if p.LastCardPlayed == "" {
				pipe.HDel(ctx, p.ID, fieldLastCardPlayed)
			}
			pipe.Expire(ctx, p.ID, rc.ttl)
		}
		pipe.Expire(ctx, redis_utils.FormatRoomUsersKey(room.ID), rc.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error saving room %s: %w", room.ID, err)
	}
	return nil
}

func roomFields(room *redis_models.Room) map[string]any {
	fields := map[string]any{
		fieldRound:   room.Round,
		fieldCards:   room.Cards,
		fieldStarted: strconv.FormatBool(room.Started),
		fieldEnded:   strconv.FormatBool(room.Ended),
		fieldType:    string(room.Type),
	}
	if room.Trump != "" {
		fields[fieldTrump] = room.Trump
	}
	if room.OwnerID != "" {
		fields[fieldOwner] = room.OwnerID
	}
	return fields
}

func playerFields(p *redis_models.Player) map[string]any {
	fields := map[string]any{
		fieldID:              p.ID,
		fieldIndex:           p.SeatIndex,
		fieldIndexThisRound:  p.TurnIndex,
		fieldName:            p.Name,
		fieldPoints:          p.Points,
		fieldPointsThisRound: p.PointsThisRound,
		fieldHand:            strings.Join(p.Hand, ","),
	}
	if p.Bid != nil {
		fields[fieldVoted] = *p.Bid
	}
	if p.LastCardPlayed != "" {
		fields[fieldLastCardPlayed] = p.LastCardPlayed
	}
	return fields
}

func parseRoom(roomID string, fields map[string]string) (*redis_models.Room, error) {
	room := &redis_models.Room{
		ID:      roomID,
		OwnerID: fields[fieldOwner],
		Type:    redis_models.GameType(fields[fieldType]),
		Trump:   fields[fieldTrump],
	}
	var err error
	if room.Round, err = atoi(fields, fieldRound); err != nil {
		return nil, fmt.Errorf("room %s: %w", roomID, err)
	}
	if room.Cards, err = atoi(fields, fieldCards); err != nil {
		return nil, fmt.Errorf("room %s: %w", roomID, err)
	}
	room.Started = fields[fieldStarted] == "true"
	room.Ended = fields[fieldEnded] == "true"
	return room, nil
}

func parsePlayer(fields map[string]string) (*redis_models.Player, error) {
	p := &redis_models.Player{
		ID:             fields[fieldID],
		Name:           fields[fieldName],
		LastCardPlayed: fields[fieldLastCardPlayed],
	}
	var err error
	if p.SeatIndex, err = atoi(fields, fieldIndex); err != nil {
		return nil, err
	}
	if p.TurnIndex, err = atoi(fields, fieldIndexThisRound); err != nil {
		return nil, err
	}
	if p.Points, err = atoi(fields, fieldPoints); err != nil {
		return nil, err
	}
	if p.PointsThisRound, err = atoi(fields, fieldPointsThisRound); err != nil {
		return nil, err
	}
	if v, ok := fields[fieldVoted]; ok && v != "" {
		bid, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldVoted, err)
		}
		p.Bid = &bid
	}
	if hand := fields[fieldHand]; hand != "" {
		p.Hand = strings.Split(hand, ",")
	}
	return p, nil
}

func atoi(fields map[string]string, name string) (int, error) {
	v, ok := fields[name]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return n, nil
}
