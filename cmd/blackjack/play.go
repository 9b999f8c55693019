package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/save"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006B3C")).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	pushStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

// session runs the interactive loop around the engine. It owns no game
// rules: every decision is a call into the engine, every display line
// comes from an Info snapshot.
type session struct {
	engine  *game.Engine
	store   *save.Store
	logger  *log.Logger
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

func (s *session) play() error {
	s.scanner = bufio.NewScanner(s.in)

	fmt.Fprintln(s.out, titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))

	for s.engine.Player().Bankroll >= s.engine.MinBet() {
		info := s.engine.Info()
		s.logger.Debug("game state", "state", info.State, "bankroll", info.Bankroll, "shoe", info.ShoeSize)

		var done bool
		switch info.State {
		case game.StateBetting:
			done = s.promptBet(info)
		case game.StatePlayerTurn:
			done = s.promptAction(info)
		case game.StateRoundOver:
			done = s.showRoundOver(info)
			s.engine.StartNewRound()
		}
		if done {
			return nil
		}
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, loseStyle.Render("Out of money, thanks for playing!"))
	return nil
}

// promptBet reads and places a bet. Unparsable or rejected amounts
// re-prompt on the next pass; they never end the session.
func (s *session) promptBet(info game.Info) bool {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, sectionStyle.Render("--- Round Start ---"))
	fmt.Fprintf(s.out, "Bankroll: $%d\n", info.Bankroll)
	fmt.Fprintf(s.out, "Cards remaining: %d\n", info.ShoeSize)

	line, ok := s.prompt(fmt.Sprintf("Enter bet amount ($%d-$%d): ", s.engine.MinBet(), s.engine.MaxBet()))
	if !ok {
		return true
	}

	amount, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number")
		return false
	}
	if !s.engine.PlaceBet(amount) {
		fmt.Fprintln(s.out, "Invalid bet amount")
		return false
	}
	fmt.Fprintf(s.out, "Bet placed: $%d\n", amount)
	return false
}

// promptAction asks for hit or stand. When hitting is no longer legal
// the hand stands automatically.
func (s *session) promptAction(info game.Info) bool {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, sectionStyle.Render("--- Your Turn ---"))
	fmt.Fprintf(s.out, "Your hand: %s (Value: %d)\n", info.PlayerHand, info.PlayerValue)
	fmt.Fprintf(s.out, "Dealer shows: %s\n", info.DealerUpCard)

	if !info.CanHit {
		s.engine.Stand()
		return false
	}

	line, ok := s.prompt("(h)it or (s)tand? ")
	if !ok {
		return true
	}
	switch strings.ToLower(line) {
	case "h", "hit":
		s.engine.Hit()
	case "s", "stand":
		s.engine.Stand()
	default:
		fmt.Fprintln(s.out, "Invalid action")
	}
	return false
}

func (s *session) showRoundOver(info game.Info) bool {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, sectionStyle.Render("--- Round Over ---"))
	fmt.Fprintf(s.out, "Your hand: %s (%d)\n", info.PlayerHand, info.PlayerValue)
	fmt.Fprintf(s.out, "Dealer hand: %s (%d)\n", info.DealerHand, info.DealerValue)
	fmt.Fprintf(s.out, "Result: %s\n", renderResult(info.Result))
	fmt.Fprintf(s.out, "New Bankroll: $%d\n", info.Bankroll)

	line, ok := s.prompt("Save game? (y/n): ")
	if !ok {
		return true
	}
	if strings.ToLower(line) == "y" {
		path, err := s.store.Save(s.engine.Player())
		if err != nil {
			s.logger.Error("save failed", "error", err)
			fmt.Fprintln(s.out, "Could not save the game")
		} else {
			fmt.Fprintf(s.out, "Game saved to: %s\n", path)
		}
	}
	return false
}

// prompt prints a question and returns the trimmed reply. ok is false
// once stdin is closed, which ends the session cleanly.
func (s *session) prompt(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func renderResult(result game.RoundResult) string {
	switch result {
	case game.ResultVictory:
		return winStyle.Render("VICTORY")
	case game.ResultBlackjack:
		return winStyle.Render("BLACKJACK")
	case game.ResultLoss:
		return loseStyle.Render("LOSS")
	case game.ResultBusted:
		return loseStyle.Render("BUSTED")
	case game.ResultTie:
		return pushStyle.Render("PUSH")
	default:
		return result.String()
	}
}
