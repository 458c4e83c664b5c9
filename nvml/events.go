package nvml

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gomlx/gonvml/enums"
	"k8s.io/klog/v2"
)

// EventSet collects asynchronous notifications (ECC errors, Xid errors,
// clock and power state changes) from the devices registered into it with
// Device.RegisterEvents.
//
// Unlike Device and Unit, an EventSet is an owned native resource: the
// caller must Free it when done. A finalizer frees leaked sets as a
// backstop and logs the leak, but relying on it delays the release
// arbitrarily. Wait blocks and may run concurrently with Free; the native
// library wakes blocked waiters with ErrTimeout when the set is freed.
type EventSet struct {
	session *Session
	handle  eventSetHandle
	freed   atomic.Bool
}

// EventData is one notification delivered by EventSet.Wait.
type EventData struct {
	// Device that raised the event.
	Device *Device

	// Type is the single event type of this notification.
	Type enums.EventType

	// Data carries the type-specific payload. For XidCriticalError it is
	// the Xid number of the error; for other types it is zero.
	Data uint64
}

func newEventSet(s *Session, handle eventSetHandle) *EventSet {
	e := &EventSet{session: s, handle: handle}
	runtime.SetFinalizer(e, func(e *EventSet) {
		if e.freed.Load() {
			return
		}
		klog.Errorf("nvml: EventSet garbage collected without Free, releasing it now -- call EventSet.Free to release event sets timely")
		if err := e.Free(); err != nil {
			klog.Errorf("nvml: freeing leaked EventSet: %v", err)
		}
	})
	return e
}

// handleForUse returns the native handle, or ErrUninitialized once the set
// is freed or its session shut down.
func (e *EventSet) handleForUse() (eventSetHandle, error) {
	if err := e.session.check(); err != nil {
		return 0, err
	}
	if e.freed.Load() {
		return 0, toError(ErrorUninitialized)
	}
	return e.handle, nil
}

// Wait blocks until an event registered into the set arrives and returns
// it, or fails with ErrTimeout after the given duration (which may be
// zero to poll). Spurious ErrTimeout wake-ups are possible and callers
// are expected to Wait in a loop.
func (e *EventSet) Wait(timeout time.Duration) (EventData, error) {
	handle, err := e.handleForUse()
	if err != nil {
		return EventData{}, err
	}
	raw, ret := e.session.lib.api.EventSetWait(handle, uint32(timeout.Milliseconds()))
	if err := toError(ret); err != nil {
		return EventData{}, err
	}
	return EventData{
		Device: e.session.deviceFromHandle(raw.Device),
		Type:   enums.EventType(raw.EventType),
		Data:   raw.EventData,
	}, nil
}

// Free releases the native event set. Safe to call more than once; only the
// first call reaches the native library. A set whose session was already
// shut down is released implicitly by the shutdown, so Free becomes a
// no-op then too.
func (e *EventSet) Free() error {
	e.session.lib.mu.Lock()
	defer e.session.lib.mu.Unlock()
	if e.freed.Swap(true) {
		return nil
	}
	runtime.SetFinalizer(e, nil)
	if e.session.lib.generation.Load() != e.session.generation {
		// Shutdown already destroyed every native event set.
		return nil
	}
	return toError(e.session.lib.api.EventSetFree(e.handle))
}
