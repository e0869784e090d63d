package janggi

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnIndex maps 'a'..'i' to 0..8.
func ColumnIndex(letter byte) (int, error) {
	if letter < 'a' || letter > 'i' {
		return 0, fmt.Errorf("%w: column %q", ErrBadSquare, letter)
	}
	return int(letter - 'a'), nil
}

// RowIndex maps "1".."10" to 0..9.
func RowIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > Rows || strings.HasPrefix(s, "0") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: row %q", ErrBadSquare, s)
	}
	return n - 1, nil
}

// ParseSquare reads algebraic notation such as "e9" or "a10".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return NoSquare, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	col, err := ColumnIndex(s[0])
	if err != nil {
		return NoSquare, err
	}
	row, err := RowIndex(s[1:])
	if err != nil {
		return NoSquare, err
	}
	return Sq(row, col), nil
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.Col())) + strconv.Itoa(s.Row()+1)
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrOffBoard, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}
