// Package log provides the zerolog-based logger shared by the onu
// binaries. Events are JSON and, once Init has been called, persist to an
// SQLite database under the user's app dir so past runs stay queryable
// through the logs subcommand. Before Init (or after SetConsole) events
// go to a console writer or nowhere.
package log

import (
	"database/sql"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"path"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"onu-go/pkg/appdir"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
	writer    *dbWriter
	handle    *sql.DB

	// ErrNotInitialized is returned by the retrieval functions before
	// Init has opened the database.
	ErrNotInitialized = errors.New("log: logger not initialized, call log.Init() first")
)

const timeFieldFormat = time.RFC3339Nano

// dbWriter is the io.Writer zerolog feeds; each event becomes one row.
type dbWriter struct {
	mu   sync.Mutex
	db   *sql.DB
	stmt *sql.Stmt
}

func openDB(dbPath string) (*dbWriter, *sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite db %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite db %s: %w", dbPath, err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS run_events (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
        event TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_run_events_time ON run_events (json_extract(event, '$.time'));`
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create run_events table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO run_events (event) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return &dbWriter{db: db, stmt: stmt}, db, nil
}

func (w *dbWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.stmt.Exec(string(p)); err != nil {
		stdlog.Printf("ERROR writing log event to SQLite: %v\n", err)
		return 0, err
	}
	return len(p), nil
}

func (w *dbWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var firstErr error
	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			firstErr = fmt.Errorf("error closing statement: %w", err)
		}
		w.stmt = nil
	}
	if w.db != nil {
		if err := w.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing db: %w", err)
		}
		w.db = nil
	}
	return firstErr
}

// SetConsole switches the package logger to a human-readable console
// writer on stdout, bypassing the database.
func SetConsole() {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init opens (creating if needed) the SQLite-backed logger at dbFile
// under the app dir.
func Init(dbFile string) error {
	if dbFile == "" {
		return fmt.Errorf("logger needs an explicit dbFile")
	}

	mu.Lock()
	defer mu.Unlock()
	if writer != nil {
		return fmt.Errorf("logger already initialized")
	}

	dbPath := path.Join(appdir.AppDir(), dbFile)
	w, db, err := openDB(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create SQLite log writer: %w", err)
	}
	writer = w
	handle = db

	zerolog.TimeFieldFormat = timeFieldFormat
	pkgLogger = zerolog.New(writer).With().Timestamp().Logger()
	return nil
}

// Close flushes the shutdown event and releases the database.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if writer == nil {
		return nil
	}

	w := writer
	writer = nil
	handle = nil
	pkgLogger = zerolog.Nop()

	closeLogger := zerolog.New(w).With().Timestamp().Logger()
	closeLogger.Log().Msg("closing run log")
	if err := w.close(); err != nil {
		return fmt.Errorf("error closing SQLite logger: %w", err)
	}
	return nil
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }

// Printf sends an info-level event in the manner of fmt.Printf.
func Printf(format string, v ...any) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}

// --- retrieval, backing the logs subcommand ---

// Entry is one persisted log event.
type Entry struct {
	ID         int64
	InsertedAt time.Time
	Event      string // raw JSON
}

const DefaultLimit = 100

func getHandle() (*sql.DB, error) {
	mu.RLock()
	defer mu.RUnlock()
	if handle == nil {
		return nil, ErrNotInitialized
	}
	return handle, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var e Entry
		var inserted string
		if err := rows.Scan(&e.ID, &inserted, &e.Event); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		e.InsertedAt = parseDBTimestamp(inserted)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}
	return entries, nil
}

// parseDBTimestamp tries the timestamp layouts SQLite commonly emits.
func parseDBTimestamp(ts string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, ts); err == nil {
			return t
		}
	}
	stdlog.Printf("Warning: could not parse inserted_at timestamp %q", ts)
	return time.Time{}
}

// LastN retrieves the most recent n entries in chronological order.
func LastN(n int) ([]Entry, error) {
	db, err := getHandle()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Entry{}, nil
	}
	rows, err := db.Query(`SELECT id, inserted_at, event FROM run_events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d events: %w", n, err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Between retrieves entries whose event time falls within [start, end],
// oldest first. A limit <= 0 means DefaultLimit.
func Between(start, end time.Time, limit int) ([]Entry, error) {
	db, err := getHandle()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := db.Query(`
        SELECT id, inserted_at, event FROM run_events
        WHERE json_extract(event, '$.time') >= ? AND json_extract(event, '$.time') <= ?
        ORDER BY json_extract(event, '$.time') ASC, id ASC
        LIMIT ?`,
		start.Format(timeFieldFormat), end.Format(timeFieldFormat), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events between %s and %s: %w", start, end, err)
	}
	return scanEntries(rows)
}

// Since retrieves entries from start up to now.
func Since(start time.Time, limit int) ([]Entry, error) {
	return Between(start, time.Now(), limit)
}
