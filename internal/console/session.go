// Package console runs a hot-seat game over line-oriented text input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/gridgames/internal/model"
	"github.com/benbeisheim/gridgames/internal/notation"
)

type Options struct {
	// GameType skips the menu when set.
	GameType model.GameType
	// FEN starts a chess game from the given position.
	FEN string
	// Plain disables ANSI colors.
	Plain bool
}

var menu = []struct {
	key      string
	label    string
	gameType model.GameType
}{
	{"1", "Chess", model.GameChess},
	{"2", "Modified chess", model.GameModifiedChess},
	{"3", "Checkers", model.GameCheckers},
}

var errInputClosed = errors.New("input closed")

type Session struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
	game *model.Game
}

func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
}

// Run plays until the players quit or input ends.
func (s *Session) Run() error {
	gameType := s.opts.GameType
	if gameType == "" {
		var err error
		gameType, err = s.chooseGameType()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	game, err := s.newGame(gameType)
	if err != nil {
		return err
	}
	s.game = game
	s.game.SetPromotion(s.choosePromotion)

	renderBoard(s.out, s.game.GetState().Board, nil, s.opts.Plain)
	for {
		state := s.game.GetState()
		fmt.Fprintf(s.out, "\nMoves made: %d\n", state.MoveCount)
		fmt.Fprintf(s.out, "%s to move (e.g. 'E2 E4', 'undo', 'hint' or 'quit'): ", displayName(state.ToMove))

		line, err := s.readLine()
		if err != nil {
			s.quit()
			return nil
		}
		switch strings.ToLower(line) {
		case "quit":
			s.quit()
			return nil
		case "undo":
			s.undo()
		case "hint":
			renderThreats(s.out, state, s.opts.Plain)
		default:
			s.move(line)
		}
	}
}

func (s *Session) newGame(gameType model.GameType) (*model.Game, error) {
	if s.opts.FEN == "" {
		return model.NewGame("console", gameType)
	}
	if gameType != model.GameChess {
		return nil, fmt.Errorf("%w: only %s games start from a fen", notation.ErrInvalidFEN, model.GameChess)
	}
	board, toMove, err := notation.LoadFEN(s.opts.FEN)
	if err != nil {
		return nil, err
	}
	return model.NewGameWithBoard("console", board, toMove), nil
}

func (s *Session) chooseGameType() (model.GameType, error) {
	fmt.Fprintln(s.out, "Choose a game:")
	for _, item := range menu {
		fmt.Fprintf(s.out, "%s. %s\n", item.key, item.label)
	}
	for {
		fmt.Fprint(s.out, "Enter a number (1-3): ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		for _, item := range menu {
			if line == item.key {
				return item.gameType, nil
			}
		}
		fmt.Fprintln(s.out, "Invalid choice. Please enter a number from 1 to 3.")
	}
}

// choosePromotion asks until a valid piece letter is entered. Closed input picks a queen.
func (s *Session) choosePromotion(color model.Color) model.PieceType {
	fmt.Fprintf(s.out, "%s pawn promotes. Choose Q (queen), R (rook), B (bishop) or N (knight): ", displayName(color))
	for {
		line, err := s.readLine()
		if err != nil {
			return model.Queen
		}
		if choice, err := model.ParsePromotion(line); err == nil {
			return choice
		}
		fmt.Fprint(s.out, "Invalid choice. Enter Q, R, B or N: ")
	}
}

func (s *Session) move(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		fmt.Fprintln(s.out, "Enter a move as two squares, e.g. 'E2 E4'.")
		return
	}
	ply, err := s.game.MakeMove(model.MoveRequest{From: fields[0], To: fields[1]})
	if err != nil {
		fmt.Fprintln(s.out, describe(err))
		return
	}
	if ply.Promotion != "" {
		fmt.Fprintf(s.out, "Promoted to %s.\n", ply.Promotion)
	}
	renderThreats(s.out, s.game.GetState(), s.opts.Plain)
}

func (s *Session) undo() {
	history := s.game.GetState().MoveHistory
	if _, ok := s.game.Undo(); !ok {
		fmt.Fprintln(s.out, "Nothing to undo.")
		return
	}
	last := history[len(history)-1]
	fmt.Fprintf(s.out, "Undid move %s -> %s\n", last.From, last.To)
	renderBoard(s.out, s.game.GetState().Board, nil, s.opts.Plain)
}

func (s *Session) quit() {
	fmt.Fprintln(s.out, "\nGame over.")
	renderHistory(s.out, s.game.GetState().MoveHistory)
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// describe turns engine errors into player-facing text.
func describe(err error) string {
	var moveErr *model.MoveError
	if !errors.As(err, &moveErr) {
		if errors.Is(err, model.ErrInvalidPosition) {
			return "Invalid square. Use a letter A-H and a digit 1-8, e.g. E2."
		}
		return err.Error()
	}
	switch {
	case errors.Is(err, model.ErrEmptyCell):
		return fmt.Sprintf("There is no piece on %s.", moveErr.From)
	case errors.Is(err, model.ErrWrongOwner):
		return "You can only move your own pieces."
	case errors.Is(err, model.ErrProtectedGuardian):
		return fmt.Sprintf("The guardian on %s is protected by an adjacent ally.", moveErr.To)
	case errors.Is(err, model.ErrOccupiedBySelf):
		return fmt.Sprintf("%s is occupied by your own piece.", moveErr.To)
	case errors.Is(err, model.ErrIllegalMove):
		return fmt.Sprintf("The piece on %s cannot move to %s.", moveErr.From, moveErr.To)
	}
	return err.Error()
}
