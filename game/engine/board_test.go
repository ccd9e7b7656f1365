package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize)

	if board.Size() != DefaultBoardSize {
		t.Errorf("Expected size %d, got %d", DefaultBoardSize, board.Size())
	}
	if count := board.CountKind(KindUnoccupied); count != DefaultBoardSize*DefaultBoardSize {
		t.Errorf("Expected every cell unoccupied, got %d", count)
	}

	occ, err := board.At(11, 11)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if occ.Position() != (Position{Row: 11, Col: 11}) {
		t.Errorf("Unoccupied cell reports wrong position %+v", occ.Position())
	}
}

func TestBoardAtOutOfBounds(t *testing.T) {
	board := NewBoard(3)
	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 3, 0},
		{"col too large", 0, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := board.At(test.row, test.col)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestBoardPlace(t *testing.T) {
	board := NewBoard(3)

	if !board.Place(NewHero(1, 1, "a", TeamOne)) {
		t.Fatal("Expected placement on an empty cell to succeed")
	}
	if board.Place(NewHero(1, 1, "b", TeamTwo)) {
		t.Error("Expected placement on an occupied cell to fail")
	}
	if board.Place(NewHero(5, 5, "c", TeamTwo)) {
		t.Error("Expected placement off the board to fail")
	}

	board.set(Impassable{Pos: Position{Row: 0, Col: 0}})
	if board.Place(NewHero(0, 0, "d", TeamOne)) {
		t.Error("Expected placement on impassable terrain to fail")
	}

	occ, _ := board.At(1, 1)
	if occ.Kind() != KindHero {
		t.Errorf("Expected hero at (1,1), got %s", occ.Kind())
	}
	if hero := occ.(*Hero); hero.Name != "a" {
		t.Errorf("Expected first hero to keep the cell, got %s", hero.Name)
	}
}

func TestBoardRemove(t *testing.T) {
	board := NewBoard(3)
	board.Place(NewHero(2, 2, "a", TeamOne))

	prev, err := board.Remove(2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if prev.Kind() != KindHero {
		t.Errorf("Expected removed occupant to be a hero, got %s", prev.Kind())
	}
	if !board.IsUnoccupied(2, 2) {
		t.Error("Expected cell to be unoccupied after remove")
	}
}

func TestBoardSpawnPoints(t *testing.T) {
	board := NewBoard(4)
	board.RegisterSpawnPoint(0, 0, TeamOne)
	board.RegisterSpawnPoint(0, 1, TeamOne)
	board.RegisterSpawnPoint(3, 3, TeamTwo)

	if !board.HasSpawnPointsLeft(TeamOne) {
		t.Fatal("Expected team one to have spawn points")
	}

	first, err := board.NextSpawnPoint(TeamOne)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first != (Position{Row: 0, Col: 0}) {
		t.Errorf("Expected spawn points in registration order, got %+v", first)
	}
	second, _ := board.NextSpawnPoint(TeamOne)
	if second != (Position{Row: 0, Col: 1}) {
		t.Errorf("Expected (0,1), got %+v", second)
	}

	if board.HasSpawnPointsLeft(TeamOne) {
		t.Error("Expected team one queue to be consumed")
	}
	if _, err := board.NextSpawnPoint(TeamOne); !errors.Is(err, ErrNoSpawnPoints) {
		t.Errorf("Expected ErrNoSpawnPoints, got %v", err)
	}

	board.FlushSpawnPoints()
	if board.HasSpawnPointsLeft(TeamTwo) {
		t.Error("Expected flush to discard team two spawn points")
	}
}

func TestBoardSharedSpawnPoints(t *testing.T) {
	board := NewBoard(4)
	board.RegisterSpawnPoint(0, 0, TeamOne)
	board.RegisterSpawnPoint(2, 2, TeamAny)

	p, _ := board.NextSpawnPoint(TeamOne)
	if p != (Position{Row: 0, Col: 0}) {
		t.Errorf("Expected own spawn point first, got %+v", p)
	}
	if !board.HasSpawnPointsLeft(TeamTwo) {
		t.Error("Expected shared spawn point to be available to team two")
	}
	p, _ = board.NextSpawnPoint(TeamTwo)
	if p != (Position{Row: 2, Col: 2}) {
		t.Errorf("Expected shared spawn point, got %+v", p)
	}
	if board.HasSpawnPointsLeft(TeamOne) || board.HasSpawnPointsLeft(TeamAny) {
		t.Error("Expected all queues to be empty")
	}
}

func TestBoardHasValidSpawnPoints(t *testing.T) {
	tests := []struct {
		name       string
		one, two   int
		shared     int
		maxPerTeam int
		expected   bool
	}{
		{"one each, max one", 1, 1, 0, 1, true},
		{"one each, max two", 1, 1, 0, 2, false},
		{"team two missing", 2, 0, 0, 1, false},
		{"shared fills both", 0, 0, 4, 2, true},
		{"shared counted once", 2, 0, 1, 2, false},
		{"mixed", 1, 1, 2, 2, true},
		{"zero required", 0, 0, 0, 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := NewBoard(10)
			col := 0
			register := func(n int, team Team) {
				for i := 0; i < n; i++ {
					board.RegisterSpawnPoint(0, col, team)
					col++
				}
			}
			register(test.one, TeamOne)
			register(test.two, TeamTwo)
			register(test.shared, TeamAny)

			if got := board.HasValidSpawnPoints(test.maxPerTeam); got != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestBoardFreeCells(t *testing.T) {
	board := NewBoard(2)
	board.set(Impassable{Pos: Position{Row: 0, Col: 0}})
	board.RegisterSpawnPoint(0, 1, TeamOne)

	free := board.FreeCells()
	expected := []Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if len(free) != len(expected) {
		t.Fatalf("Expected %d free cells, got %v", len(expected), free)
	}
	for i := range expected {
		if free[i] != expected[i] {
			t.Errorf("Expected free cell %+v at %d, got %+v", expected[i], i, free[i])
		}
	}

	board.FlushSpawnPoints()
	if len(board.FreeCells()) != 3 {
		t.Errorf("Expected flushed spawn point to become free, got %v", board.FreeCells())
	}
}

func TestBoardString(t *testing.T) {
	game := NewGame(2)
	game.AddDiamondMine(0, 0)
	game.AddHealthWell(0, 1)
	game.AddImpassable(1, 0)
	game.AddHero(1, 1, "a", TeamOne)

	lines := strings.Split(game.Board().String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "DM|HW" {
		t.Errorf("Expected first row DM|HW, got %q", lines[0])
	}
	if lines[1] != "IM|H00" {
		t.Errorf("Expected second row IM|H00, got %q", lines[1])
	}
}

func TestNeighbors(t *testing.T) {
	board := NewBoard(3)
	if n := board.Neighbors(Position{Row: 0, Col: 0}); len(n) != 2 {
		t.Errorf("Expected 2 neighbors for a corner, got %v", n)
	}
	if n := board.Neighbors(Position{Row: 1, Col: 1}); len(n) != 4 {
		t.Errorf("Expected 4 neighbors for the center, got %v", n)
	}
	if d := ManhattanDistance(Position{Row: 0, Col: 0}, Position{Row: 2, Col: 1}); d != 3 {
		t.Errorf("Expected distance 3, got %d", d)
	}
}
