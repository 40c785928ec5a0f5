package marketevent

import (
	"github.com/smallbiznis/tycoon/internal/marketevent/repository"
	"github.com/smallbiznis/tycoon/internal/marketevent/service"
	"go.uber.org/fx"
)

var Module = fx.Module("marketevent.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
