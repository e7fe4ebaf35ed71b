package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *dbm.Order) error
	FindByID(ctx context.Context, id uint) (*dbm.Order, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]dbm.Order, error)
	ListAll(ctx context.Context) ([]dbm.Order, error)

	// UpdateStatusCAS moves the order from one status to another only if it
	// still holds the expected current status, so two concurrent transitions
	// cannot both win. Returns false without error when the swap lost.
	UpdateStatusCAS(ctx context.Context, id uint, from, to dbm.OrderStatus, extra map[string]interface{}) (bool, error)

	CountSince(ctx context.Context, since int64) (int64, error)
	CountByStatusSince(ctx context.Context, since int64) (map[string]int64, error)
	RevenueSince(ctx context.Context, since int64) (int64, error)
}

type orderRepository struct {
	db  *gorm.DB
	seq Sequence
}

func NewOrderRepository(db *gorm.DB, seq Sequence) OrderRepository {
	return &orderRepository{db: db, seq: seq}
}

func (r *orderRepository) Insert(ctx context.Context, order *dbm.Order) error {
	id, err := r.seq.Next(ctx, "orders")
	if err != nil {
		return err
	}
	order.ID = id
	for i := range order.Items {
		itemID, err := r.seq.Next(ctx, "order_items")
		if err != nil {
			return err
		}
		order.Items[i].ID = itemID
		order.Items[i].OrderID = id
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*dbm.Order, error) {
	var order dbm.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Order, error) {
	var order dbm.Order
	err := r.db.WithContext(ctx).Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Order, error) {
	var orders []dbm.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListAll(ctx context.Context) ([]dbm.Order, error) {
	var orders []dbm.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatusCAS(ctx context.Context, id uint, from, to dbm.OrderStatus, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := r.db.WithContext(ctx).Model(&dbm.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *orderRepository) CountSince(ctx context.Context, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatusSince(ctx context.Context, since int64) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&dbm.Order{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.Count
	}
	return out, nil
}

func (r *orderRepository) RevenueSince(ctx context.Context, since int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&dbm.Order{}).
		Select("COALESCE(SUM(total_minor), 0)").
		Where("created_at >= ? AND status <> ?", since, dbm.OrderStatusCancelled).
		Scan(&total).Error
	return total, err
}
