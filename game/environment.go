package game

import (
	"fmt"
	"quarto/utils"
)

// WinReward is the absolute reward for completing a line. It is not relative to
// any player; the game master credits it to whoever made the move.
const WinReward = 100.0

// Environment is a mutable game session. Positions and pieces are each used at
// most once per game; both sets only shrink until the next Reset.
type Environment struct {
	state              State
	availablePositions []Position
	availablePieces    []Piece
}

func NewEnvironment() *Environment {
	return &Environment{state: NewState()}
}

// State returns the current state.
func (e *Environment) State() State {
	return e.state
}

// Reset clears the board and returns the initial state with its legal actions.
// The last piece starts in reserve, so only the other 15 can be chosen.
func (e *Environment) Reset() (State, []Action) {
	e.state = NewState()
	e.availablePositions = make([]Position, 0, NumPositions)
	for i := 0; i < NumPositions; i++ {
		e.availablePositions = append(e.availablePositions, PositionFromCode(uint8(i)))
	}
	e.availablePieces = make([]Piece, 0, NumPieces-1)
	for i := 0; i < NumPieces-1; i++ {
		e.availablePieces = append(e.availablePieces, PieceFromCode(uint8(i)))
	}
	return e.state, e.actions()
}

// Step places the reserved piece at the action's position and reserves the
// action's piece for the opponent.
//
// Once the last piece has been handed over there is nothing left to choose, so
// the game is finished immediately by placing it on the last free cell. A win
// produced by that forced placement counts against the mover, hence the negated
// reward.
func (e *Environment) Step(action Action) (State, float64, bool, []Action) {
	e.applyPosition(action.Position)
	if !utils.RemoveItem(&e.availablePieces, action.Piece) {
		panic(fmt.Sprintf("piece %s is not available", action.Piece))
	}
	e.state.reserve = action.Piece

	reward, done := 0.0, false
	if r, ok := e.finalReward(action.Position); ok {
		reward, done = r, true
	} else if len(e.availablePieces) == 0 {
		last := e.availablePositions[0]
		e.applyPosition(last)
		r, ok := e.finalReward(last)
		if !ok {
			panic("board is full but the game is not over")
		}
		if r != 0 {
			reward = -r
		}
		done = true
	}

	if done {
		return e.state, reward, true, nil
	}
	actions := e.actions()
	if len(actions) == 0 {
		panic("no legal actions on a non-terminal state")
	}
	return e.state, reward, false, actions
}

// actions is the cross product of free positions and available pieces,
// positions in the outer loop.
func (e *Environment) actions() []Action {
	actions := make([]Action, 0, len(e.availablePositions)*len(e.availablePieces))
	for _, position := range e.availablePositions {
		for _, piece := range e.availablePieces {
			actions = append(actions, Action{Position: position, Piece: piece})
		}
	}
	return actions
}

func (e *Environment) applyPosition(p Position) {
	if !utils.RemoveItem(&e.availablePositions, p) {
		panic(fmt.Sprintf("position %s is not available", p))
	}
	e.state.put(p, e.state.reserve)
}

// finalReward checks the lines through the given position. It reports false
// while the game goes on.
func (e *Environment) finalReward(p Position) (float64, bool) {
	r, c := p.Row, p.Col
	won := e.hasCommonTrait(line(r, 0, r, 1, r, 2, r, 3)) ||
		e.hasCommonTrait(line(0, c, 1, c, 2, c, 3, c))
	if !won && r == c {
		won = e.hasCommonTrait(line(0, 0, 1, 1, 2, 2, 3, 3))
	}
	if !won && r+c == Size-1 {
		won = e.hasCommonTrait(line(3, 0, 2, 1, 1, 2, 0, 3))
	}

	switch {
	case won:
		return WinReward, true
	case len(e.availablePositions) == 0:
		return 0, true
	default:
		return 0, false
	}
}

func line(r0, c0, r1, c1, r2, c2, r3, c3 uint8) [Size]Position {
	return [Size]Position{{r0, c0}, {r1, c1}, {r2, c2}, {r3, c3}}
}

// hasCommonTrait reports whether the line is full and all its pieces share at
// least one attribute.
func (e *Environment) hasCommonTrait(cells [Size]Position) bool {
	var pieces [Size]Piece
	for i, p := range cells {
		piece, ok := e.state.At(p)
		if !ok {
			return false
		}
		pieces[i] = piece
	}

	same := func(attr func(Piece) bool) bool {
		first := attr(pieces[0])
		for _, piece := range pieces[1:] {
			if attr(piece) != first {
				return false
			}
		}
		return true
	}
	return same(func(p Piece) bool { return p.Hollow }) ||
		same(func(p Piece) bool { return p.Square }) ||
		same(func(p Piece) bool { return p.Short }) ||
		same(func(p Piece) bool { return p.Black })
}
