package core

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHook atomic.Pointer[func()]

// SetCrashHook registers cleanup run before a crash is reported, such as
// restoring the terminal. Nil clears it
func SetCrashHook(fn func()) {
	if fn == nil {
		crashHook.Store(nil)
		return
	}
	crashHook.Store(&fn)
}

// HandleCrash is the unified panic handler: logs the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := crashHook.Load(); hook != nil {
		(*hook)()
	}

	slog.Error("crash detected",
		"component", "core",
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)

	// Logger may be buffered by a JSON handler on stdout
	os.Stdout.Sync()
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for long-lived simulation goroutines
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
