package content

import "go.uber.org/fx"

// Module provides the registry loaded from the embedded page records.
var Module = fx.Module("content",
	fx.Provide(Load),
)
