package server

import (
	"Blog/handler"
)

type Handlers struct {
	Auth            *handler.Auth
	User            *handler.User
	Post            *handler.Post
	CommentsHandler *handler.CommentsHandler
	Reaction        *handler.Reaction
	Health          *handler.Health
}
