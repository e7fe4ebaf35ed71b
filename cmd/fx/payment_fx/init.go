package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, services.NewPaymentService, provideVerifier, controllers.NewPaymentController)

func provideTransactionRepo(db *gorm.DB, seq repositories.Sequence, memSeq *repositories.MemorySequence) repositories.TransactionRepository {
	if db != nil {
		return repositories.NewTransactionRepository(db, seq)
	}
	return repositories.NewMemoryTransactionRepository(memSeq)
}

func provideVerifier(p services.PaymentService) services.PaymentVerifier {
	return p
}
