package orion

import (
	"fmt"
	"log/slog"
)

// Handle panics with a description of err if err is not nil.
// Use it where failing is not an option, e.g. during startup.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		slog.Error(text, slog.String("err", err.Error()))
		panic(text + ": " + err.Error())
	}
}
