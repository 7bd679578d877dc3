// Package core holds process-level helpers shared by the binary and the scenes.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/logger"
)

// emergencyReset leaves the alternate screen, shows the cursor and resets attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[0m\r\n"

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLog    *logger.Logger

	// Overridden in tests
	crashExit   = os.Exit
	crashStdout io.Writer = os.Stdout
	crashStderr io.Writer = os.Stderr
)

// SetScreen registers the screen to restore when a crash is handled
func SetScreen(s tcell.Screen) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// SetLogger registers a logger that also receives crash reports
func SetLogger(l *logger.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLog = l
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, log := crashScreen, crashLog
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	} else {
		fmt.Fprint(crashStdout, emergencyReset)
	}

	stack := debug.Stack()
	if log != nil {
		log.Errorf("crash: %v\n%s", r, stack)
	}
	fmt.Fprintf(crashStderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashStderr, "Stack Trace:\n%s\n", stack)

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
