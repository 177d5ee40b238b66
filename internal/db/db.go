package db

import "database/sql"

// DB wraps the sql handle so stores depend on this package
// instead of database/sql directly.
type DB struct {
	*sql.DB
}
