package janggi

import "errors"

var (
	ErrGameOver    = errors.New("game already decided")
	ErrEmptySource = errors.New("no piece on source square")
	ErrNotYourTurn = errors.New("piece does not belong to side to move")
	ErrIllegalMove = errors.New("illegal move")
	ErrOffBoard    = errors.New("square off board")
	ErrBadSquare   = errors.New("bad square notation")
	ErrInvalidFEN  = errors.New("invalid FEN")
)
