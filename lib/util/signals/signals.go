package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
)

// sigCh carries one buffered slot so a signal arriving between receives is
// held rather than dropped.
var sigCh = make(chan os.Signal, 1)

// Handler is a callback invoked when the process receives a signal.
type Handler func()

// HandlerID identifies a registered handler so it can be removed later.
type HandlerID int

type handlerEntry struct {
	id  HandlerID
	run Handler
}

var (
	handlersMu  sync.RWMutex
	onInterrupt []handlerEntry
	lastID      HandlerID
	stopOnce    sync.Once
)

// RegisterInterruptHandler adds f to the set of callbacks run when the
// process is asked to stop (SIGINT or SIGTERM, plus SIGHUP on Unix, where a
// vanished terminal means nobody is reading our output). Handlers run in
// registration order. A nil f is ignored and reported as -1.
func RegisterInterruptHandler(f Handler) HandlerID {
	if f == nil {
		return -1
	}
	handlersMu.Lock()
	defer handlersMu.Unlock()
	lastID++
	onInterrupt = append(onInterrupt, handlerEntry{id: lastID, run: f})
	return lastID
}

// DeregisterInterruptHandler removes the handler registered under id.
// Unknown ids are ignored.
func DeregisterInterruptHandler(id HandlerID) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	for i := range onInterrupt {
		if onInterrupt[i].id != id {
			continue
		}
		onInterrupt = append(onInterrupt[:i], onInterrupt[i+1:]...)
		return
	}
}

// runInterruptHandlers invokes every registered handler against a snapshot
// of the list, so handlers may register or deregister without deadlocking.
func runInterruptHandlers() {
	handlersMu.RLock()
	pending := make([]handlerEntry, len(onInterrupt))
	copy(pending, onInterrupt)
	handlersMu.RUnlock()

	for _, entry := range pending {
		safely(entry.run)
	}
}

// safely runs one handler and absorbs its panic. Handlers fire mid-teardown,
// so the report goes straight to stderr rather than through the logger.
func safely(run Handler) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "signals: interrupt handler panicked: %v\n", r)
		}
	}()
	run()
}

// StopHandle detaches sigCh from signal delivery and closes it, which makes
// Handle return. Calling it more than once is harmless.
func StopHandle() {
	stopOnce.Do(func() {
		signal.Stop(sigCh)
		close(sigCh)
	})
}
