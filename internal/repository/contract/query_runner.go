package contract

import "context"

// QueryRunner executes one read-only SQL statement. The dynamic text-to-SQL
// path and the vector ingestion table scan use this; fixed aggregates go
// through typed repositories.
type QueryRunner interface {
	// RunSelect returns the result column names and rows in database order.
	// Cell values are raw driver values (int64, float64, []byte, string,
	// time.Time, nil).
	RunSelect(ctx context.Context, stmt string) (columns []string, rows [][]interface{}, err error)
}
