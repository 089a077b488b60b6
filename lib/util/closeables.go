package util

import (
	"io"
	"sync"
)

// exitClosers holds handles that must still be closed if the process is torn
// down early, such as an output file cut off by an interrupt. The happy path
// closes its own handles; this list is the interrupt path's view of them.
var (
	exitClosers []io.Closer
	closersMu   sync.Mutex
)

// RegisterCloser adds c to the set closed by CloseAll.
func RegisterCloser(c io.Closer) {
	closersMu.Lock()
	defer closersMu.Unlock()
	exitClosers = append(exitClosers, c)
	log.WithField("tracked", len(exitClosers)).Debug("Tracking closer for teardown")
}

// CloseAll closes every registered handle and empties the set. A failing
// Close does not stop the remaining handles from being closed.
func CloseAll() {
	closersMu.Lock()
	defer closersMu.Unlock()

	for _, c := range exitClosers {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("Failed to close resource during teardown")
		}
	}
	exitClosers = nil
}
