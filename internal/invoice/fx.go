package invoice

import (
	"github.com/smallbiznis/invoicepilot/internal/invoice/render"
	"github.com/smallbiznis/invoicepilot/internal/invoice/repository"
	"github.com/smallbiznis/invoicepilot/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
