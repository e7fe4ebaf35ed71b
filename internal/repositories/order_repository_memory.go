package repositories

import (
	"context"
	"sync"
	"time"

	dbm "tiffinbox/internal/models/db_models"
)

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uint]dbm.Order
	seq    *MemorySequence
}

func NewMemoryOrderRepository(seq *MemorySequence) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[uint]dbm.Order),
		seq:    seq,
	}
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order *dbm.Order) error {
	id, _ := r.seq.Next(ctx, "orders")
	order.ID = id
	now := time.Now().Unix()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		itemID, _ := r.seq.Next(ctx, "order_items")
		order.Items[i].ID = itemID
		order.Items[i].OrderID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id uint) (*dbm.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.orders[id]; ok {
		copied := o
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryOrderRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*dbm.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.orders[id]; ok && o.UserID == userID {
		copied := o
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryOrderRepository) ListByUser(ctx context.Context, userID uint) ([]dbm.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dbm.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortByID(out, func(o dbm.Order) uint { return o.ID })
	return out, nil
}

func (r *MemoryOrderRepository) ListAll(ctx context.Context) ([]dbm.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dbm.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortByID(out, func(o dbm.Order) uint { return o.ID })
	return out, nil
}

func (r *MemoryOrderRepository) UpdateStatusCAS(ctx context.Context, id uint, from, to dbm.OrderStatus, extra map[string]interface{}) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	if v, ok := extra["razorpay_order_id"]; ok {
		o.RazorpayOrderID, _ = v.(string)
	}
	if v, ok := extra["razorpay_payment_id"]; ok {
		o.RazorpayPaymentID, _ = v.(string)
	}
	o.UpdatedAt = time.Now().Unix()
	r.orders[id] = o
	return true, nil
}

func (r *MemoryOrderRepository) CountSince(ctx context.Context, since int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, o := range r.orders {
		if o.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}

func (r *MemoryOrderRepository) CountByStatusSince(ctx context.Context, since int64) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64)
	for _, o := range r.orders {
		if o.CreatedAt >= since {
			out[string(o.Status)]++
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) RevenueSince(ctx context.Context, since int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, o := range r.orders {
		if o.CreatedAt >= since && o.Status != dbm.OrderStatusCancelled {
			total += o.TotalMinor
		}
	}
	return total, nil
}
