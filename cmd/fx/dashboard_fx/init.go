package dashboard_fx

import (
	"go.uber.org/fx"

	"tiffinbox/internal/api/controllers"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	services.NewDashboardService, controllers.NewDashboardController)
