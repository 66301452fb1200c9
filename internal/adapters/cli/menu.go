package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/example/fixen/internal/core/errs"
)

var banner = []string{
	"░█▀▀░▀█▀░█░█░█▀▀░█▀█░█▀▄░█▀▀░▄▀▄░█░█░█▀▀░█▀▀░▀█▀",
	"░█▀▀░░█░░▄▀▄░█▀▀░█░█░█▀▄░█▀▀░█ █░█░█░█▀▀░▀▀█░░█░",
	"░▀░░░▀▀▀░▀░▀░▀▀▀░▀░▀░▀░▀░▀▀▀░░▀▀▀░▀░░▀▀▀░▀▀▀░░▀░",
}

// MenuAdapter runs the interactive session: it reads choices line by line
// from its input and drives the room and request adapters.
type MenuAdapter struct {
	in       *bufio.Scanner
	screen   *Screen
	rooms    *RoomAdapter
	requests *RequestAdapter
	logger   *zap.Logger
}

// NewMenuAdapter creates a new MenuAdapter reading from in.
func NewMenuAdapter(in io.Reader, screen *Screen, rooms *RoomAdapter, requests *RequestAdapter, logger *zap.Logger) *MenuAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuAdapter{
		in:       bufio.NewScanner(in),
		screen:   screen,
		rooms:    rooms,
		requests: requests,
		logger:   logger.Named("menu"),
	}
}

// Run shows the main menu until the user exits or input ends.
func (m *MenuAdapter) Run(ctx context.Context) error {
	m.welcome()

	for {
		m.screen.Box("MAIN MENU", "", m.screen.Options(
			"[1] Show Rooms",
			"[2] Search Rooms",
			"[3] Request Issue",
			"[4] Pending Requests",
			"[0] Exit",
		))
		choice, ok, err := m.readChoice()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !ok {
			m.screen.Box("Invalid option.")
			continue
		}

		m.logger.Debug("main menu choice", zap.Int("choice", choice))
		switch choice {
		case 1:
			err = m.showRooms(ctx)
		case 2:
			err = m.searchMenu(ctx)
		case 3:
			err = m.requestIssue(ctx)
		case 4:
			_, err = m.requests.ShowPending(ctx)
		case 0:
			m.goodbye()
			return nil
		default:
			m.screen.Box("Invalid option.")
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !reported(err) {
			return err
		}
	}

	m.goodbye()
	return nil
}

func (m *MenuAdapter) welcome() {
	var lines []string
	if lipgloss.Width(banner[0]) <= m.screen.width-2 {
		lines = append(lines, banner...)
	}
	m.screen.Box(append(lines, "Welcome to fixENrequest!")...)
}

func (m *MenuAdapter) goodbye() {
	m.screen.Box("Thank you for using fixENrequest!")
}

func (m *MenuAdapter) showRooms(ctx context.Context) error {
	m.screen.Box("Enter floor (1-4):")
	floor, ok, err := m.readChoice()
	if err != nil {
		return err
	}
	if !ok {
		m.screen.Box("Invalid option.")
		return nil
	}
	_, err = m.rooms.ShowFloor(ctx, floor)
	return err
}

func (m *MenuAdapter) searchMenu(ctx context.Context) error {
	for {
		m.screen.Box("Search Rooms by:", "", m.screen.Options(
			"[1] Room Number",
			"[2] Room Type",
			"[3] Issues",
			"[0] Back",
		))
		choice, ok, err := m.readChoice()
		if err != nil {
			return err
		}
		if !ok {
			m.screen.Box("Invalid option.")
			continue
		}

		switch choice {
		case 1:
			err = m.searchByNumber(ctx)
		case 2:
			err = m.searchByType(ctx)
		case 3:
			err = m.searchByIssue(ctx)
		case 0:
			return nil
		default:
			m.screen.Box("Invalid option.")
		}
		if err != nil && !reported(err) {
			return err
		}
	}
}

func (m *MenuAdapter) searchByNumber(ctx context.Context) error {
	m.screen.Box("Enter room number to search:")
	fragment, err := m.readLine()
	if err != nil {
		return err
	}
	_, err = m.rooms.SearchByNumber(ctx, fragment)
	return err
}

func (m *MenuAdapter) searchByType(ctx context.Context) error {
	m.rooms.ShowTypes()
	m.screen.Box("Select Room Type (1-5):")
	choice, ok, err := m.readChoice()
	if err != nil {
		return err
	}
	if !ok {
		m.screen.Box("Invalid choice.")
		return nil
	}
	_, err = m.rooms.SearchByType(ctx, choice)
	return err
}

func (m *MenuAdapter) searchByIssue(ctx context.Context) error {
	m.rooms.ShowIssues("Available Issues:")
	m.screen.Box("Select Issue Type (1-3):")
	choice, ok, err := m.readChoice()
	if err != nil {
		return err
	}
	if !ok {
		m.screen.Box("Invalid choice.")
		return nil
	}
	_, err = m.rooms.SearchByIssue(ctx, choice)
	return err
}

func (m *MenuAdapter) requestIssue(ctx context.Context) error {
	m.screen.Box("Enter room number:")
	number, err := m.readLine()
	if err != nil {
		return err
	}
	found, err := m.requests.CheckRoom(ctx, number)
	if err != nil || !found {
		return err
	}

	m.rooms.ShowIssues("Select issue type:")
	choice, ok, err := m.readChoice()
	if err != nil {
		return err
	}
	if !ok {
		m.screen.Box("Invalid choice.")
		return nil
	}
	_, err = m.requests.Submit(ctx, number, choice)
	return err
}

// readLine prompts and returns the next input line without surrounding
// whitespace. It returns io.EOF when input is exhausted.
func (m *MenuAdapter) readLine() (string, error) {
	m.screen.Prompt()
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// readChoice reads a numeric menu choice. ok is false when the line is
// not a number.
func (m *MenuAdapter) readChoice() (choice int, ok bool, err error) {
	line, err := m.readLine()
	if err != nil {
		return 0, false, err
	}
	choice, convErr := strconv.Atoi(line)
	if convErr != nil {
		m.logger.Debug("malformed choice", zap.String("input", line))
		return 0, false, nil
	}
	return choice, true, nil
}

// reported reports whether err is a rejection already shown to the user.
func reported(err error) bool {
	return errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrInvalidSelection) ||
		errors.Is(err, errs.ErrDuplicateRequest)
}
