package contract

import "context"

// ColumnInfo describes one column of a relational table
type ColumnInfo struct {
	Name     string
	DataType string
	Nullable bool
}

type SchemaRepository interface {
	// Columns lists a table's columns in ordinal position order
	Columns(ctx context.Context, table string) ([]ColumnInfo, error)
}
