package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx, so repositories
// built on gorm share the transaction opened by a service with BeginTx.
// A nil tx returns db unchanged.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil || db == nil {
		return db
	}
	// Context forces gorm to clone the statement instead of sharing it.
	g := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	g.Statement.ConnPool = tx
	return g
}
