//go:build wireinject
// +build wireinject

package main

import (
	"Blog/config"
	"Blog/dao"
	"Blog/dao/cache"
	"Blog/handler"
	"Blog/pkg/client"
	"Blog/pkg/database"
	"Blog/pkg/server"
	"Blog/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		cache.NewReactionCountStorage,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
