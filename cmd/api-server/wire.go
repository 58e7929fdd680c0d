//go:build wireinject
// +build wireinject

package main

import (
	"Xiaoji/config"
	"Xiaoji/dao"
	"Xiaoji/handler"
	"Xiaoji/pkg/client"
	"Xiaoji/pkg/database"
	"Xiaoji/pkg/server"
	"Xiaoji/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
