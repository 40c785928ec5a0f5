package lifechoice

import (
	"github.com/smallbiznis/tycoon/internal/lifechoice/repository"
	"github.com/smallbiznis/tycoon/internal/lifechoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lifechoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
