package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/gridgames/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// The connections observing a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // connection id -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // a websocket.Conn allows one writer at a time
	sent        uint64     // version of the newest state written, guarded by writeMu
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one hot-seat session: a board plus whose turn it is.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	toMove      Color
	version     uint64 // bumped by every mutation
	connections *GameConnections
}

type GameState struct {
	ID          string         `json:"id"`
	GameType    GameType       `json:"gameType"`
	Board       [8][8]string   `json:"board"`
	Pieces      []Piece        `json:"pieces"`
	ToMove      Color          `json:"toMove"`
	MoveCount   int            `json:"moveCount"`
	MoveHistory []HistoryEntry `json:"moveHistory"`
	LastMove    *LastMove      `json:"lastMove"`
	IsCheck     bool           `json:"isCheck"`
	Threatened  []Position     `json:"threatened"`
	Version     uint64         `json:"version"`
}

// NewGame starts a session with the standard starting position of gameType. White moves first.
func NewGame(id string, gameType GameType) (*Game, error) {
	board, err := NewGameBoard(gameType)
	if err != nil {
		return nil, err
	}
	return NewGameWithBoard(id, board, White), nil
}

// NewGameWithBoard wraps an already populated board.
func NewGameWithBoard(id string, board *Board, toMove Color) *Game {
	return &Game{
		ID:          id,
		board:       board,
		toMove:      toMove,
		connections: NewGameConnections(),
	}
}

// SetPromotion installs the chooser used when a move request carries no promotion.
func (g *Game) SetPromotion(fn PromotionFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.SetPromotion(fn)
}

func (g *Game) ToMove() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

func (g *Game) GameType() GameType {
	return g.board.GameType()
}

// MakeMove executes a move for the side to move and hands the turn over.
func (g *Game) MakeMove(move MoveRequest) (Ply, error) {
	ply, state, err := g.makeMove(move)
	if err != nil {
		return Ply{}, err
	}
	go g.broadcastState(state)
	return ply, nil
}

func (g *Game) makeMove(move MoveRequest) (Ply, GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, err := ParsePosition(move.From)
	if err != nil {
		return Ply{}, GameState{}, err
	}
	to, err := ParsePosition(move.To)
	if err != nil {
		return Ply{}, GameState{}, err
	}
	if move.Promotion != "" {
		if !move.Promotion.isPromotionChoice() {
			return Ply{}, GameState{}, rejectMove(from, to, ErrInvalidPromotion)
		}
		prev := g.board.promote
		choice := move.Promotion
		g.board.promote = func(Color) PieceType { return choice }
		defer func() { g.board.promote = prev }()
	}

	ply, err := g.board.Move(from, to, g.toMove)
	if err != nil {
		return Ply{}, GameState{}, err
	}
	g.switchTurn()
	g.version++
	return ply, g.stateLocked(), nil
}

// Undo takes back the last move and gives the turn back to the player who made it.
func (g *Game) Undo() (Color, bool) {
	g.mu.Lock()
	player, ok := g.board.Undo()
	if !ok {
		g.mu.Unlock()
		return "", false
	}
	g.toMove = player
	g.version++
	state := g.stateLocked()
	g.mu.Unlock()

	go g.broadcastState(state)
	return player, true
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// Threats reports the threatened squares of color and whether its king is in check.
func (g *Game) Threats(color Color) ([]Position, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ThreatenedPositions(color), g.board.KingInCheck(color)
}

func (g *Game) Figure(square string) (*Piece, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.GetFigure(square)
}

// Inspect runs fn with the board and the side to move while holding the game lock.
// fn must not mutate the board.
func (g *Game) Inspect(fn func(b *Board, toMove Color) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.board, g.toMove)
}

func (g *Game) stateLocked() GameState {
	var pieces []Piece
	pieces = append(pieces, g.board.PlayerFigures(White)...)
	pieces = append(pieces, g.board.PlayerFigures(Black)...)
	return GameState{
		ID:          g.ID,
		GameType:    g.board.GameType(),
		Board:       g.board.Grid(),
		Pieces:      pieces,
		ToMove:      g.toMove,
		MoveCount:   g.board.MoveCount(),
		MoveHistory: g.board.History(),
		LastMove:    g.board.LastMove(),
		IsCheck:     g.board.KingInCheck(g.toMove),
		Threatened:  g.board.ThreatenedPositions(g.toMove),
		Version:     g.version,
	}
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opponent()
}

func (g *Game) RegisterConnection(connID string, conn *websocket.Conn) error {
	if connID == "" {
		return errors.New("connection id is required")
	}
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[connID]; exists {
		g.connections.mu.Unlock()
		return fmt.Errorf("connection %s already registered", connID)
	}
	g.connections.connections[connID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState(g.GetState())
	return nil
}

func (g *Game) UnregisterConnection(connID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, connID)
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// advance records version as written. It rejects anything older than what observers already
// hold; the same version may be sent again for newly registered connections. Callers hold writeMu.
func (gc *GameConnections) advance(version uint64) bool {
	if version < gc.sent {
		return false
	}
	gc.sent = version
	return true
}

// broadcastState pushes state to every observer. Broadcasts run concurrently, so a state older
// than one already written is dropped. Connections that fail are dropped.
func (g *Game) broadcastState(state GameState) {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	if !g.connections.advance(state.Version) {
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for id, conn := range g.connections.connections {
		active[id] = conn
	}
	g.connections.mu.RUnlock()
	if len(active) == 0 {
		return
	}

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	for id, conn := range active {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, id, err)
			g.UnregisterConnection(id)
		}
	}
}

// Send writes a single message to one observer.
func (g *Game) Send(connID string, msg ws.Message) error {
	g.connections.mu.RLock()
	conn, ok := g.connections.connections[connID]
	g.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("connection %s not registered", connID)
	}
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}
