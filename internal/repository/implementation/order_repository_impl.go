package implementation

import (
	"context"
	"errors"

	"warehouse-chat-be/internal/model"
	"warehouse-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) CountByStatus(ctx context.Context, statusId int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TestDataOrder{}).
		Where("order_status_id = ?", statusId).
		Count(&count).Error
	return count, err
}

func (r *OrderRepositoryImpl) CountGroupedByStatus(ctx context.Context) ([]contract.StatusCount, error) {
	var results []contract.StatusCount
	err := r.db.WithContext(ctx).
		Model(&model.TestDataOrder{}).
		Select("order_status_id as status_id, COUNT(*) as count").
		Group("order_status_id").
		Order("order_status_id ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *OrderRepositoryImpl) FindByIdentifier(ctx context.Context, identifier string) (*model.TestDataOrder, error) {
	var m model.TestDataOrder
	err := r.db.WithContext(ctx).
		Where("order_id::text = ? OR lookup_code = ?", identifier, identifier).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
