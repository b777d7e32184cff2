package persist

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// profilesTable is the name of the table for weighting profiles.
const profilesTable = "herotier_profiles"

// ProfileStoreImpl stores weighting profiles as key/value rows.
type ProfileStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	connStr   string
}

var _ contract.ProfileStore = &ProfileStoreImpl{} // Compile-time check

// NewProfileStore opens the profile table for the backend, creating it when missing.
// The none backend yields a store that remembers nothing.
func NewProfileStore(tableName string, backend schema.DatabaseBackend, connStr string) (*ProfileStoreImpl, error) {
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	if backend == schema.NoneBackend {
		return &ProfileStoreImpl{tableName: tableName, backend: backend, connStr: connStr}, nil
	}

	db, err := openDB(backend, connStr, contract.GetProfileDBFilePath())
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(profileTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &ProfileStoreImpl{db: db, tableName: tableName, backend: backend, connStr: connStr}, nil
}

// profileTableQuery returns the CREATE TABLE query for the backend.
func profileTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quoted := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				profile_key VARCHAR(255) PRIMARY KEY,
				profile_value BLOB NOT NULL,
				profile_version INT NOT NULL,
				profile_timestamp BIGINT NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				profile_key TEXT PRIMARY KEY,
				profile_value BYTEA NOT NULL,
				profile_version INTEGER NOT NULL,
				profile_timestamp BIGINT NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				profile_key TEXT PRIMARY KEY,
				profile_value BLOB NOT NULL,
				profile_version INTEGER NOT NULL,
				profile_timestamp INTEGER NOT NULL
			);
		`, quoted)
	}
}

// Get retrieves a value by key from the store.
func (ps *ProfileStoreImpl) Get(key string) ([]byte, int, int64, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	query := rebind(fmt.Sprintf(`SELECT profile_value, profile_version, profile_timestamp FROM %s WHERE profile_key = ?`,
		quoteTableName(ps.tableName, ps.backend)), ps.backend)
	if err := ps.db.QueryRow(query, key).Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a key/value pair in the store.
func (ps *ProfileStoreImpl) Set(key string, value []byte, version int, timestamp int64) error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	_, err := ps.db.Exec(ps.upsertQuery(), key, value, version, timestamp)
	return err
}

// upsertQuery returns the UPSERT query for the backend.
func (ps *ProfileStoreImpl) upsertQuery() string {
	quoted := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (profile_key, profile_value, profile_version, profile_timestamp) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE profile_value = new.profile_value, profile_version = new.profile_version, profile_timestamp = new.profile_timestamp`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (profile_key, profile_value, profile_version, profile_timestamp) VALUES ($1, $2, $3, $4)
			ON CONFLICT (profile_key) DO UPDATE SET profile_value = EXCLUDED.profile_value, profile_version = EXCLUDED.profile_version, profile_timestamp = EXCLUDED.profile_timestamp`, quoted)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (profile_key, profile_value, profile_version, profile_timestamp) VALUES (?, ?, ?, ?)`, quoted)
	}
}

// List returns every stored key in ascending order.
func (ps *ProfileStoreImpl) List() ([]string, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT profile_key FROM %s ORDER BY profile_key`, quoteTableName(ps.tableName, ps.backend))
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan profile key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close closes the underlying DB connection.
func (ps *ProfileStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the profile store.
func (ps *ProfileStoreImpl) GetStatus() (schema.ProfileStatus, error) {
	status := schema.ProfileStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quoted := quoteTableName(ps.tableName, ps.backend)

	if err := ps.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoted)).Scan(&status.TotalProfiles); err != nil {
		return status, fmt.Errorf("failed to get total profiles: %w", err)
	}

	if status.TotalProfiles == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	query := fmt.Sprintf("SELECT MAX(profile_timestamp), MIN(profile_timestamp) FROM %s", quoted)
	if err := ps.db.QueryRow(query).Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get profile timestamps: %w", err)
	}
	status.LastSavedTime = time.Unix(lastTs, 0)
	status.OldestSavedTime = time.Unix(oldestTs, 0)

	status.TableSizeBytes = tableSize(ps.db, ps.backend, ps.connStr, ps.tableName, int64(status.TotalProfiles))
	return status, nil
}

// tableSize estimates the on-disk size of a table.
// For SQLite it reports the whole database file.
func tableSize(db *sql.DB, backend schema.DatabaseBackend, connStr, tableName string, rowCount int64) int64 {
	fallback := rowCount * 1000 // Rough estimate
	var size int64

	switch backend {
	case schema.SQLiteBackend:
		if err := db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size); err != nil {
			return 0
		}
	case schema.MySQLBackend:
		dbName := mysqlDatabaseName(connStr)
		if dbName == "" {
			return fallback
		}
		query := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		if err := db.QueryRow(query, dbName, tableName).Scan(&size); err != nil {
			return fallback
		}
	case schema.PostgreSQLBackend:
		if err := db.QueryRow("SELECT pg_total_relation_size($1)", tableName).Scan(&size); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return size
}
