package handler

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(User), "*"),
	wire.Struct(new(Note), "*"),
	wire.Struct(new(Like), "*"),
	wire.Struct(new(Collect), "*"),
	wire.Struct(new(Follow), "*"),
	wire.Struct(new(Comment), "*"),
	wire.Struct(new(Message), "*"),
)
