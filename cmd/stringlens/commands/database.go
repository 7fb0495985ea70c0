package commands

import (
	"database/sql"

	"github.com/solset/stringlens/config"
	"github.com/solset/stringlens/db"
	"github.com/solset/stringlens/errors"
	"github.com/solset/stringlens/logger"
	"github.com/solset/stringlens/storage"
)

// newStore wraps an open database in the SQL store with the global logger
func newStore(database *sql.DB) *storage.SQLStore {
	return storage.NewSQLStore(database, logger.Logger)
}

// openDatabase opens and migrates a database at the specified path.
// If dbPath is empty, it is resolved from config (env > project > user >
// system > default). Uses logger.Logger for db operations.
func openDatabase(dbPath string) (*sql.DB, string, error) {
	if dbPath == "" {
		path, err := config.GetDatabasePath()
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to get database path")
		}
		if path == "" {
			dbPath = "stringlens.db"
		} else {
			dbPath = path
		}
	}

	database, err := db.Open(dbPath, logger.Logger)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open database at %s", dbPath)
	}

	if err := db.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, "", errors.Wrapf(err, "failed to run migrations on %s", dbPath)
	}

	return database, dbPath, nil
}
