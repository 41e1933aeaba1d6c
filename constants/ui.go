package constants

// Display
const (
	// EventBufferSize is the capacity of the key event channel between the pump goroutine and the loop
	EventBufferSize = 256

	// HUDRow is the screen row used by the debug status line
	HUDRow = 0
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "arena.log"

	// MaxLogSize triggers rotation of the previous log file at startup
	MaxLogSize = 10 * 1024 * 1024
)

// Process exit codes
const (
	ExitOK      = 0
	ExitQuit    = 1
	ExitFailure = 2
)
