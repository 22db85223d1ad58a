package util

import (
	"database/sql"
)

// Int64PtrToNullInt64 converts an optional id to sql.NullInt64.
// A nil pointer is treated as NULL.
func Int64PtrToNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// NullInt64ToInt64Ptr converts sql.NullInt64 back to an optional id.
func NullInt64ToInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
