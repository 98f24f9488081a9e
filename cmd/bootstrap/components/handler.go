package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewItemHandler,
		api.NewUserHandler,
		api.NewRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)
