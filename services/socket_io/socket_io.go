package socket_io

import (
	game_constants "Whist/constants/game"
	"Whist/middleware"
	"Whist/services/game"
	"Whist/services/socket_io/handlers"
	socketio_types "Whist/services/socket_io/types"
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start creates the socket.io server and mounts it on the router under /socket.io/.
func (sio *MySocketServer) Start(router *gin.Engine, engine *game.Engine, tokens *middleware.TokenIssuer, corsOrigin string, logger *slog.Logger) {
	log.DEBUG = logger.Enabled(context.Background(), slog.LevelDebug)
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      corsOrigin,
		Credentials: true,
	})

	// KEY: inicializar el map, sino panikea
	sio.UserConnections = make(map[string]*socket.Socket)
	server := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)

		playerID, roomID, ok := authenticate(client, engine, tokens)
		if !ok {
			client.Disconnect(true)
			return
		}

		server.AddConnection(playerID, client)
		client.Join(socket.Room(roomID))
		logger.Info("player connected", "room", roomID, "player", playerID, "socket", client.Id())

		session := &handlers.Session{
			Engine:   engine,
			Events:   server,
			Client:   client,
			PlayerID: playerID,
			RoomID:   roomID,
			Logger:   logger,
		}
		client.On(game_constants.EventGetPublicData, handlers.HandleGetPublicData(session))
		client.On(game_constants.EventStartGame, handlers.HandleStartGame(session))
		client.On(game_constants.EventChangeType, handlers.HandleChangeGameType(session))
		client.On(game_constants.EventVote, handlers.HandleVote(session))
		client.On(game_constants.EventPlayCard, handlers.HandlePlayCard(session))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(session, func() {
			server.RemoveConnection(playerID, client)
		}))

		handlers.HandleConnected(session)
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	logger.Info("socket server started")
}

// Close disconnects every client.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}

// authenticate reads {token, roomId} from the handshake and checks the player is
// seated in that room.
func authenticate(client *socket.Socket, engine *game.Engine, tokens *middleware.TokenIssuer) (playerID, roomID string, ok bool) {
	authData, ok := client.Handshake().Auth.(map[string]any)
	if !ok {
		client.Emit(game_constants.EventError, gin.H{"error": "Authentication failed: missing auth data"})
		return "", "", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	token, _ := authData["token"].(string)
	wantRoom, _ := authData["roomId"].(string)
	playerID, roomID, err := Authenticate(ctx, engine, tokens, token, wantRoom)
	if err != nil {
		client.Emit(game_constants.EventError, gin.H{"error": "Authentication failed: " + err.Error()})
		return "", "", false
	}
	return playerID, roomID, true
}
