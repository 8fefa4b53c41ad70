package script

import (
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// registerConsole adds console.log/warn/error, routed through logger
// instead of the teacher's direct fmt.Println/os.Stderr writes — this
// repo's ambient error-handling design (SPEC_FULL.md section 7) sends every
// collaborator-layer diagnostic through log/slog.
func registerConsole(vm *goja.Runtime, logger *slog.Logger) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		logger.Info(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		logger.Warn(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		logger.Error(formatArgs(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
