package implementation

import (
	"context"

	"warehouse-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SchemaRepositoryImpl struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) contract.SchemaRepository {
	return &SchemaRepositoryImpl{db: db}
}

func (r *SchemaRepositoryImpl) Columns(ctx context.Context, table string) ([]contract.ColumnInfo, error) {
	type row struct {
		ColumnName string
		DataType   string
		IsNullable string
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Raw(`SELECT column_name, data_type, is_nullable
		     FROM information_schema.columns
		     WHERE table_name = ?
		     ORDER BY ordinal_position`, table).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	columns := make([]contract.ColumnInfo, len(rows))
	for i, c := range rows {
		columns[i] = contract.ColumnInfo{
			Name:     c.ColumnName,
			DataType: c.DataType,
			Nullable: c.IsNullable == "YES",
		}
	}
	return columns, nil
}
