package signals

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// =============================================================================
// Signal Handler Registration Tests
// =============================================================================

// TestRegisterInterruptHandler verifies interrupt handler registration.
func TestRegisterInterruptHandler(t *testing.T) {
	// Save original state
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()

	// Reset state
	onInterrupt = nil

	called := false
	handler := func() {
		called = true
	}

	RegisterInterruptHandler(handler)

	if len(onInterrupt) != 1 {
		t.Errorf("Expected 1 handler registered, got %d", len(onInterrupt))
	}

	// Trigger the handler
	runInterruptHandlers()

	if !called {
		t.Error("Interrupt handler was not called")
	}
}

// TestMultipleInterruptHandlers verifies multiple interrupt handlers are all called.
func TestMultipleInterruptHandlers(t *testing.T) {
	// Save original state
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()

	// Reset state
	onInterrupt = nil

	callCount := 0
	var mu sync.Mutex

	for i := 0; i < 5; i++ {
		RegisterInterruptHandler(func() {
			mu.Lock()
			callCount++
			mu.Unlock()
		})
	}

	if len(onInterrupt) != 5 {
		t.Errorf("Expected 5 handlers registered, got %d", len(onInterrupt))
	}

	runInterruptHandlers()

	mu.Lock()
	if callCount != 5 {
		t.Errorf("Expected all 5 handlers to be called, got %d", callCount)
	}
	mu.Unlock()
}

// TestHandlersCalledInOrder verifies handlers are called in registration order.
func TestHandlersCalledInOrder(t *testing.T) {
	// Save original state
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()

	// Reset state
	onInterrupt = nil

	order := make([]int, 0, 3)
	var mu sync.Mutex

	for i := 0; i < 3; i++ {
		idx := i
		RegisterInterruptHandler(func() {
			mu.Lock()
			order = append(order, idx)
			mu.Unlock()
		})
	}

	runInterruptHandlers()

	mu.Lock()
	defer mu.Unlock()

	if len(order) != 3 {
		t.Fatalf("Expected 3 handlers called, got %d", len(order))
	}
	for i := 0; i < 3; i++ {
		if order[i] != i {
			t.Errorf("Expected handler %d at position %d, got %d", i, i, order[i])
		}
	}
}

// TestEmptyHandlerList verifies an empty handler list doesn't cause panic.
func TestEmptyHandlerList(t *testing.T) {
	// Save original state
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()

	// Reset state
	onInterrupt = nil

	// Should not panic
	runInterruptHandlers()
}

// TestNilHandlerBehavior verifies that nil handlers are silently rejected
// by RegisterInterruptHandler.
func TestNilHandlerBehavior(t *testing.T) {
	// Save original state
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()

	// Reset state
	onInterrupt = nil

	// Registering nil handlers should be silently ignored
	if id := RegisterInterruptHandler(nil); id != -1 {
		t.Errorf("Expected -1 for nil handler, got %d", id)
	}

	if len(onInterrupt) != 0 {
		t.Errorf("nil interrupt handler should not be registered, got %d handlers", len(onInterrupt))
	}

	// Should not panic with an empty list
	runInterruptHandlers()
}

// =============================================================================
// Signal Channel Tests
// =============================================================================

// TestSigChanInitialized verifies the signal channel is initialized.
func TestSigChanInitialized(t *testing.T) {
	if sigCh == nil {
		t.Error("sigCh should be initialized")
	}
}

// TestSigChanIsBuffered verifies channel is buffered to avoid missing signals.
func TestSigChanIsBuffered(t *testing.T) {
	// The channel is buffered (capacity 1) so that signal.Notify
	// does not drop signals when no receiver is ready.
	if cap(sigCh) != 1 {
		t.Errorf("Expected buffered channel with capacity 1, got capacity %d", cap(sigCh))
	}
}

// =============================================================================
// Panic Recovery Tests
// =============================================================================

// TestInterruptHandlerPanicRecovery verifies that a panicking interrupt handler
// is recovered and remaining handlers still execute.
func TestInterruptHandlerPanicRecovery(t *testing.T) {
	savedHandlers := onInterrupt
	defer func() { onInterrupt = savedHandlers }()
	onInterrupt = nil

	calledAfterPanic := false

	RegisterInterruptHandler(func() {
		panic("test panic in interrupt handler")
	})
	RegisterInterruptHandler(func() {
		calledAfterPanic = true
	})

	// Capture stderr to verify panic is logged
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	runInterruptHandlers()

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	b := make([]byte, 1024)
	n, _ := r.Read(b)
	buf.Write(b[:n])
	stderrOutput := buf.String()

	if !calledAfterPanic {
		t.Error("Handler after panicking handler was not called")
	}
	if len(stderrOutput) == 0 {
		t.Error("Expected panic to be logged to stderr")
	}
}

// TestConcurrentRegistration verifies thread-safe registration of handlers.
func TestConcurrentRegistration(t *testing.T) {
	savedHandlers := onInterrupt
	defer func() {
		handlersMu.Lock()
		onInterrupt = savedHandlers
		handlersMu.Unlock()
	}()
	handlersMu.Lock()
	onInterrupt = nil
	handlersMu.Unlock()

	var wg sync.WaitGroup
	numGoroutines := 50

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RegisterInterruptHandler(func() {})
		}()
	}

	wg.Wait()

	handlersMu.RLock()
	registered := len(onInterrupt)
	handlersMu.RUnlock()

	if registered != numGoroutines {
		t.Errorf("Expected %d interrupt handlers, got %d", numGoroutines, registered)
	}
}

// =============================================================================
// Deregistration Tests
// =============================================================================

// TestDeregisterInterruptHandler verifies individual interrupt handler deregistration.
func TestDeregisterInterruptHandler(t *testing.T) {
	savedHandlers := onInterrupt
	defer func() {
		handlersMu.Lock()
		onInterrupt = savedHandlers
		handlersMu.Unlock()
	}()
	handlersMu.Lock()
	onInterrupt = nil
	handlersMu.Unlock()

	called1, called2 := false, false
	id1 := RegisterInterruptHandler(func() { called1 = true })
	_ = RegisterInterruptHandler(func() { called2 = true })

	DeregisterInterruptHandler(id1)

	handlersMu.RLock()
	remaining := len(onInterrupt)
	handlersMu.RUnlock()

	if remaining != 1 {
		t.Errorf("Expected 1 handler after deregistration, got %d", remaining)
	}

	runInterruptHandlers()

	if called1 {
		t.Error("Deregistered handler should not have been called")
	}
	if !called2 {
		t.Error("Remaining handler should have been called")
	}
}

// TestDeregisterInvalidID verifies that deregistering an invalid ID is a no-op.
func TestDeregisterInvalidID(t *testing.T) {
	savedHandlers := onInterrupt
	defer func() {
		handlersMu.Lock()
		onInterrupt = savedHandlers
		handlersMu.Unlock()
	}()
	handlersMu.Lock()
	onInterrupt = nil
	handlersMu.Unlock()

	RegisterInterruptHandler(func() {})
	DeregisterInterruptHandler(999) // non-existent ID

	handlersMu.RLock()
	remaining := len(onInterrupt)
	handlersMu.RUnlock()

	if remaining != 1 {
		t.Errorf("Expected 1 handler (invalid ID should be no-op), got %d", remaining)
	}
}
