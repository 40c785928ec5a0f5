package observability

import (
	"github.com/smallbiznis/tycoon/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(metrics.NewHTTPMetrics),
)
