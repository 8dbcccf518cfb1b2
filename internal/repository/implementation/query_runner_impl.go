package implementation

import (
	"context"

	"warehouse-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type QueryRunnerImpl struct {
	db *gorm.DB
}

func NewQueryRunner(db *gorm.DB) contract.QueryRunner {
	return &QueryRunnerImpl{db: db}
}

func (r *QueryRunnerImpl) RunSelect(ctx context.Context, stmt string) ([]string, [][]interface{}, error) {
	rows, err := r.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]interface{}
	for rows.Next() {
		cells := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range cells {
			pointers[i] = &cells[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}
		records = append(records, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, records, nil
}
