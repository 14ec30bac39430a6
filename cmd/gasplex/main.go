package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gasplexhq/gasplex/internal/config"
	"github.com/gasplexhq/gasplex/internal/events"
	"github.com/gasplexhq/gasplex/internal/migration"
	"github.com/gasplexhq/gasplex/internal/observability"
	"github.com/gasplexhq/gasplex/internal/server"
	"github.com/gasplexhq/gasplex/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		events.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
