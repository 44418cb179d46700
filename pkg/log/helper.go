package log

import (
	stdlog "log"
)

// MustInit opens the database-backed logger or aborts the process.
func MustInit(dbFile string) {
	if err := Init(dbFile); err != nil {
		stdlog.Fatalf("FATAL: failed to initialize logger: %v\n", err)
	}
}
