package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	teardownMu sync.Mutex
	teardown   func()
)

// SetCrashTeardown registers the function that restores the terminal after a crash
// Passing nil clears the hook
func SetCrashTeardown(fn func()) {
	teardownMu.Lock()
	teardown = fn
	teardownMu.Unlock()
}

// RunTeardown invokes the registered teardown at most once
func RunTeardown() {
	teardownMu.Lock()
	fn := teardown
	teardown = nil
	teardownMu.Unlock()
	if fn != nil {
		fn()
	}
}

// PanicError carries a recovered panic value and the stack at recovery time
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RecoverError converts a recovered value into a *PanicError, nil-safe
func RecoverError(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*PanicError); ok {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}

// HandleCrash restores the terminal, prints the panic with stack trace and exits
func HandleCrash(r any, code int) {
	if r == nil {
		return
	}

	// Terminal must be restored before anything is printed
	RunTeardown()

	err := RecoverError(r).(*PanicError)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mARENA CRASHED: %v\x1b[0m\r\n", err.Value)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", err.Stack)
	os.Stderr.Sync()

	os.Exit(code)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash still restores the terminal
func Go(fn func(), code int) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r, code)
			}
		}()
		fn()
	}()
}
