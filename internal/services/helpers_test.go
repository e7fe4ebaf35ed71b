package services

import (
	"context"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/internal/repositories"
)

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, userID uint, channels []NotificationChannel, title, message string) {
}

type stubVerifier struct {
	err error
}

func (v stubVerifier) VerifySignature(orderID, paymentID, signature string) error {
	return v.err
}

type fixtures struct {
	seq    *repositories.MemorySequence
	users  *repositories.MemoryUserRepository
	meals  *repositories.MemoryMealRepository
	carts  *repositories.MemoryCartRepository
	orders *repositories.MemoryOrderRepository
	addrs  *repositories.MemoryAddressRepository
	subs   *repositories.MemorySubscriptionRepository
	txns   *repositories.MemoryTransactionRepository
}

func newFixtures() *fixtures {
	seq := repositories.NewMemorySequence()
	return &fixtures{
		seq:    seq,
		users:  repositories.NewMemoryUserRepository(seq),
		meals:  repositories.NewMemoryMealRepository(seq),
		carts:  repositories.NewMemoryCartRepository(seq),
		orders: repositories.NewMemoryOrderRepository(seq),
		addrs:  repositories.NewMemoryAddressRepository(seq),
		subs:   repositories.NewMemorySubscriptionRepository(seq),
		txns:   repositories.NewMemoryTransactionRepository(seq),
	}
}

func curryOption(name string, priceMinor int64) dbm.CurryOption {
	return dbm.CurryOption{Name: name, PriceMinor: priceMinor}
}

func (f *fixtures) seedMeal(name string, priceMinor int64, options ...dbm.CurryOption) *dbm.Meal {
	meal := &dbm.Meal{
		Name:         name,
		PriceMinor:   priceMinor,
		Category:     "lunch",
		IsAvailable:  true,
		CurryOptions: options,
	}
	_ = f.meals.Insert(context.Background(), meal)
	return meal
}

func (f *fixtures) seedAddress(userID uint) *dbm.Address {
	addr := &dbm.Address{
		UserID:  userID,
		Label:   "home",
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
		Phone:   "9876543210",
	}
	_ = f.addrs.Insert(context.Background(), addr)
	return addr
}
