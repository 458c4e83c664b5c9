package nvml

import (
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// Lib is a loaded NVML shared library: the resolved native function table
// plus the lifecycle state machine. The zero value is not usable; obtain one
// with Load.
//
// A Lib starts uninitialized. Init transitions it to active and hands out a
// Session; Session.Shutdown transitions it back. The binding deliberately
// flattens the native library's nested init/shutdown reference counting to
// "one session at a time": a second Init while a session is active fails
// with ErrAlreadyInitialized instead of being reference counted.
type Lib struct {
	api  api
	path string

	// mu serializes lifecycle transitions and event set create/free, the
	// only operations the native library does not allow to race. Read-only
	// getters take no lock.
	mu     sync.Mutex
	state  libState
	active *Session

	// generation is bumped on every successful lifecycle transition.
	// Sessions and handles remember the generation they were created under
	// and refuse to touch the native library once it moved on, turning
	// use-after-shutdown into a clean ErrUninitialized.
	generation atomic.Uint64
}

type libState int

const (
	libUninitialized libState = iota
	libActive
)

// Load locates the NVML shared library using the platform's dynamic loader,
// resolves the function table and returns an uninitialized Lib.
//
// The library is searched as "libnvidia-ml.so.1" (then "libnvidia-ml.so")
// through the system loader; the GONVML_LIBRARY_PATH environment variable
// (":"-separated files or directories) takes precedence when set. A missing
// library fails with ErrLibraryNotFound, a missing symbol in a library that
// was found fails with ErrFunctionNotFound. Both are distinct from
// ErrDriverNotLoaded, which Init reports when the library is present but
// the kernel driver is not.
func Load(opts ...Option) (*Lib, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	a, path, err := loadAPI(libraryCandidates(cfg.paths))
	if err != nil {
		return nil, err
	}
	return &Lib{api: a, path: path}, nil
}

// newLib wraps an already resolved function table. Used by tests to inject
// a fake backend.
func newLib(a api) *Lib {
	return &Lib{api: a}
}

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	paths []string
}

// WithLibraryPath prepends explicit paths (shared object files or
// directories containing them) to the library search order.
func WithLibraryPath(paths ...string) Option {
	return func(cfg *loadConfig) {
		cfg.paths = append(cfg.paths, paths...)
	}
}

// Path returns where the shared library was loaded from. Empty for
// injected function tables.
func (l *Lib) Path() string {
	return l.path
}

// Init initializes the native library and opens a Session scoping its use.
// Fails with ErrAlreadyInitialized while another session is active. On
// native failure the Lib stays uninitialized and the error is propagated
// (ErrDriverNotLoaded being the common one on machines without the
// driver).
//
// Prefer WithSession, which pairs Init with Shutdown on every exit path.
func (l *Lib) Init() (*Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == libActive {
		return nil, toError(ErrorAlreadyInitialized)
	}
	if err := toError(l.api.Init()); err != nil {
		return nil, err
	}
	l.state = libActive
	l.generation.Add(1)
	s := &Session{lib: l, generation: l.generation.Load()}
	l.active = s
	return s, nil
}

// shutdown releases s. Forwarded to the native library only for the session
// currently holding the Lib active; anything else reports ErrUninitialized.
func (l *Lib) shutdown(s *Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != libActive || l.active != s {
		return toError(ErrorUninitialized)
	}
	// Invalidate outstanding handles first: even if the native shutdown
	// fails, the session is over.
	l.state = libUninitialized
	l.active = nil
	l.generation.Add(1)
	return toError(l.api.Shutdown())
}

// WithSession runs fn inside a fresh session and guarantees the matching
// shutdown once initialization succeeded, on every exit path including a
// panic in fn. If both fn and the shutdown fail, fn's error wins and the
// shutdown failure is only logged.
func (l *Lib) WithSession(fn func(*Session) error) (err error) {
	s, initErr := l.Init()
	if initErr != nil {
		return initErr
	}
	defer func() {
		if shutdownErr := s.Shutdown(); shutdownErr != nil {
			if err == nil {
				err = shutdownErr
			} else {
				klog.Errorf("nvml: shutdown failed after session error %v: %v", err, shutdownErr)
			}
		}
	}()
	return fn(s)
}
