package issuer

import (
	"github.com/smallbiznis/invoicepilot/internal/issuer/repository"
	"github.com/smallbiznis/invoicepilot/internal/issuer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("issuer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
