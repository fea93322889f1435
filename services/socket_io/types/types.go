package socketio_types

import (
	"Whist/services/game"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// Connections are keyed by player id.
type SocketServer struct {
	Sio_server      *socket.Server
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(playerID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[playerID] = socket
}

// RemoveConnection forgets the player's socket unless a newer one replaced it.
func (s *SocketServer) RemoveConnection(playerID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if current, ok := s.UserConnections[playerID]; ok && current == socket {
		delete(s.UserConnections, playerID)
	}
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[playerID]
	return socket, exists
}

// Dispatch sends engine events: room wide ones to the socket.io room, the others to
// the addressed player's socket when connected.
func (s *SocketServer) Dispatch(roomID string, events []game.Event) {
	Deliver(events, s.Sio_server.To(socket.Room(roomID)), func(playerID string) (Emitter, bool) {
		conn, ok := s.GetConnection(playerID)
		if !ok {
			return nil, false
		}
		return conn, true
	})
}

// Emitter is satisfied by *socket.Socket and *socket.BroadcastOperator.
type Emitter interface {
	Emit(ev string, args ...any) error
}

// Deliver emits events in order. Events for players without a connection are dropped.
func Deliver(events []game.Event, room Emitter, lookup func(playerID string) (Emitter, bool)) {
	for _, ev := range events {
		target := room
		if ev.To != "" {
			conn, ok := lookup(ev.To)
			if !ok {
				continue
			}
			target = conn
		}
		if ev.Payload == nil {
			target.Emit(ev.Name)
		} else {
			target.Emit(ev.Name, ev.Payload)
		}
	}
}
