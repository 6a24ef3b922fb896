// Package quizstore persists computed statistics runs to a database.
package quizstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
)

// Table names for run tracking.
const (
	runsTable         = "quizstats_runs"
	metricValuesTable = "quizstats_metric_values"
)

// StoreManagerImpl manages the ResultStore instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	results      contract.ResultStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetResultStore returns the results ResultStore.
func (mgr *StoreManagerImpl) GetResultStore() contract.ResultStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetResultsDBFilePath returns the path to the SQLite DB file for the results store.
func GetResultsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".quizstats_results.db"
	}
	return filepath.Join(homeDir, ".quizstats_results.db")
}

// InitStores initializes the global store manager.
// backend can be empty to disable run tracking entirely.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var results contract.ResultStore
		if backend != "" {
			var err error
			results, err = NewResultStore(backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize results store: %w", err)
				return
			}
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.results = results
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.results != nil {
			_ = Manager.results.Close()
		}
	})
}

// ClearStore clears the recorded runs for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the run tables.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSQLTables("mysql", connStr, metricValuesTable, runsTable)

	case schema.PostgreSQLBackend:
		return dropSQLTables("pgx", connStr, metricValuesTable, runsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropSQLTables connects to the SQL database and drops the tables if they exist.
func dropSQLTables(driverName, connStr string, tableNames ...string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, tableName := range tableNames {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tableName, err)
		}
	}

	return nil
}
