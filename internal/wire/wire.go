// Package wire provides dependency injection for the fixen application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/fixen/internal/adapters/cli"
	"github.com/example/fixen/internal/adapters/sqlite"
	"github.com/example/fixen/internal/adapters/zaplog"
	"github.com/example/fixen/internal/app"
	"github.com/example/fixen/internal/config"
	"github.com/example/fixen/internal/db"
	"github.com/example/fixen/internal/ports/primary"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	roomService    primary.RoomService
	requestService primary.RequestService
	once           sync.Once
)

// Configure sets the configuration and logger used when the services are
// first created. Calls after the first service access have no effect.
func Configure(c *config.Config, l *zap.Logger) {
	cfg = c
	logger = l
}

// RoomService returns the singleton RoomService instance.
func RoomService() primary.RoomService {
	once.Do(initServices)
	return roomService
}

// RequestService returns the singleton RequestService instance.
func RequestService() primary.RequestService {
	once.Do(initServices)
	return requestService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		loaded, err := config.Load()
		if err == nil {
			err = loaded.Validate()
		}
		if err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}
		cfg = loaded
	}

	database, err := db.Open(cfg.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	roomRepo := sqlite.NewRoomRepository(database)
	requestRepo := sqlite.NewRequestRepository(database)
	audit := zaplog.NewLogWriterAdapter(logger)

	// Create services (primary ports implementation)
	rooms := app.NewRoomService(roomRepo, audit, logger)
	roomService = rooms
	requestService = app.NewRequestService(requestRepo, rooms, audit, logger)

	if _, err := rooms.Build(context.Background(), db.SeedRooms()); err != nil {
		logger.Fatal("failed to build room registry", zap.Error(err))
	}
}

// Screen returns a Screen drawing to out with the configured width,
// border and colour settings.
func Screen(out io.Writer) *cliadapter.Screen {
	once.Do(initServices)
	return cliadapter.NewScreen(out, cliadapter.ScreenOptions{
		Width:   cfg.Width,
		Border:  cfg.Border,
		NoColor: cfg.NoColor,
	})
}

// RoomAdapter returns a new RoomAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func RoomAdapter() *cliadapter.RoomAdapter {
	return RoomAdapterWithOutput(os.Stdout)
}

// RoomAdapterWithOutput returns a new RoomAdapter writing to the given output.
func RoomAdapterWithOutput(out io.Writer) *cliadapter.RoomAdapter {
	return cliadapter.NewRoomAdapter(RoomService(), Screen(out))
}

// MenuAdapter returns a new MenuAdapter for an interactive session on the
// given input and output.
func MenuAdapter(in io.Reader, out io.Writer) *cliadapter.MenuAdapter {
	screen := Screen(out)
	rooms := cliadapter.NewRoomAdapter(RoomService(), screen)
	requests := cliadapter.NewRequestAdapter(RequestService(), rooms, screen)
	return cliadapter.NewMenuAdapter(in, screen, rooms, requests, logger)
}
