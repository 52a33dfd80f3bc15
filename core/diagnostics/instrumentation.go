package diagnostics

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const scopeName = "github.com/koscakluka/ema-stage/core/diagnostics"

var logger = otelslog.NewLogger(scopeName)
