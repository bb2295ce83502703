package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicepilot/internal/config"
	"github.com/smallbiznis/invoicepilot/internal/invoice"
	"github.com/smallbiznis/invoicepilot/internal/issuer"
	"github.com/smallbiznis/invoicepilot/internal/observability/logger"
	"github.com/smallbiznis/invoicepilot/internal/observability/metrics"
	"github.com/smallbiznis/invoicepilot/internal/observability/tracing"
	"github.com/smallbiznis/invoicepilot/internal/seed"
	"github.com/smallbiznis/invoicepilot/internal/server"
	"github.com/smallbiznis/invoicepilot/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		metrics.Module,
		tracing.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
			if cfg.IsProduction() {
				return nil
			}
			return seed.EnsureSampleData(conn, node)
		}),

		issuer.Module,
		invoice.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
