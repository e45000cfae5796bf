package database

import (
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v3"
)

// NewBadgerDB opens (creating if needed) the local badger database at dir.
// With inMemory set the database lives entirely in memory, which tests use.
func NewBadgerDB(dir string, inMemory bool, logger *slog.Logger) (*badger.DB, error) {
	if dir == "" && !inMemory {
		return nil, fmt.Errorf("database directory cannot be empty")
	}

	opts := badger.DefaultOptions(dir).
		WithInMemory(inMemory).
		WithLogger(slogBadgerAdapter{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %q: %w", dir, err)
	}
	return db, nil
}

// CloseBadgerDB closes the database, flushing pending writes.
func CloseBadgerDB(db *badger.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("Error closing badger database", slog.String("error", err.Error()))
		return
	}
	logger.Info("Badger database closed.")
}

// slogBadgerAdapter routes badger's internal logging through slog. Badger's
// info/debug chatter is demoted to debug level.
type slogBadgerAdapter struct {
	logger *slog.Logger
}

func (a slogBadgerAdapter) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}

func (a slogBadgerAdapter) Errorf(format string, args ...interface{}) {
	a.log().Error(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

func (a slogBadgerAdapter) Warningf(format string, args ...interface{}) {
	a.log().Warn(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

func (a slogBadgerAdapter) Infof(format string, args ...interface{}) {
	a.log().Debug(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}

func (a slogBadgerAdapter) Debugf(format string, args ...interface{}) {
	a.log().Debug(fmt.Sprintf(format, args...), slog.String("component", "badger"))
}
