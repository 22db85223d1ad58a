package models

import (
	"database/sql"
)

// Theme mirrors a row of the themes table.
type Theme struct {
	ID         int64         `db:"id"`
	Name       string        `db:"name"`
	OrderIndex sql.NullInt64 `db:"order_index"`
}

// Question mirrors a row of the questions table. ThemeID is NULL for the unthemed bucket.
type Question struct {
	ID         int64         `db:"id"`
	Title      string        `db:"title"`
	Answer     string        `db:"answer"`
	OrderIndex sql.NullInt64 `db:"order_index"`
	ThemeID    sql.NullInt64 `db:"theme_id"`
}
