package contract

import (
	"context"

	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/specification"
)

type ReportRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.DataCardReport, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
