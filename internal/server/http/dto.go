package httpserver

import (
	"time"

	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// 前端用的招法结构，格子用 "e7" 这样的记法
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func moveToDTO(m janggi.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String()}
}

func movesToDTO(ms []janggi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest: Position optional, empty means the standard layout.
type NewGameRequest struct {
	Position string `json:"position"`
}

// PlayRequest: from == to passes the turn.
type PlayRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GameResponse is returned by new game, state and play.
type GameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"` // FEN 字符串
	Board      string    `json:"board"`
	ToMove     string    `json:"to_move"` // "blue" / "red"
	Turn       int       `json:"turn"`
	Status     string    `json:"status"` // UNFINISHED / RED_WON / BLUE_WON
	InCheck    bool      `json:"in_check"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []MoveDTO `json:"history"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func snapshotToResponse(s game.Snapshot) GameResponse {
	return GameResponse{
		GameID:     s.ID,
		Position:   s.Position.Encode(),
		Board:      s.Position.Board.String(),
		ToMove:     s.Position.SideToMove.String(),
		Turn:       s.Turn,
		Status:     s.State.String(),
		InCheck:    s.InCheck,
		LegalMoves: movesToDTO(s.LegalMoves),
		History:    movesToDTO(s.History),
		UpdatedAt:  s.UpdatedAt,
	}
}

type DestinationsResponse struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
}

type CheckResponse struct {
	Side        string `json:"side"`
	InCheck     bool   `json:"in_check"`
	InCheckmate bool   `json:"in_checkmate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
