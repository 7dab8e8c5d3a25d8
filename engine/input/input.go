package input

import (
	"sync"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/window"
)

// Input tracks keyboard state across frames.
// Key events arrive from window callbacks at any point during message
// processing; NewFrame snapshots them so per-frame queries are stable.
type Input interface {
	// Bind registers this tracker's key callbacks on the given window.
	// Any previously registered key callbacks on the window are replaced.
	//
	// Parameters:
	//   - w: the window to receive key events from
	Bind(w window.Window)

	// NewFrame latches the current key state for the upcoming frame.
	// Call once at the start of each update before querying key state.
	NewFrame()

	// IsDown returns whether the key is held in the current frame.
	//
	// Parameters:
	//   - key: the key to query
	//
	// Returns:
	//   - bool: true if the key is held down
	IsDown(key common.Key) bool

	// WasPressed returns whether the key transitioned from up to down
	// between the previous frame and the current frame.
	//
	// Parameters:
	//   - key: the key to query
	//
	// Returns:
	//   - bool: true if the key was pressed this frame
	WasPressed(key common.Key) bool

	// PushKeyDown records a key press outside of a window binding.
	// Useful for tests and synthetic input.
	//
	// Parameters:
	//   - key: the key pressed
	PushKeyDown(key common.Key)

	// PushKeyUp records a key release outside of a window binding.
	//
	// Parameters:
	//   - key: the key released
	PushKeyUp(key common.Key)
}

// inputTracker is the implementation of the Input interface.
type inputTracker struct {
	// mu guards all state maps; key callbacks fire on the window thread.
	mu sync.Mutex

	// live is the raw key state as reported by callbacks.
	live map[common.Key]bool

	// current is the latched state for the frame in progress.
	current map[common.Key]bool

	// previous is the latched state from the prior frame.
	previous map[common.Key]bool
}

var _ Input = &inputTracker{}

// NewInput creates an empty keyboard state tracker.
//
// Returns:
//   - Input: the tracker, not yet bound to a window
func NewInput() Input {
	return &inputTracker{
		live:     make(map[common.Key]bool),
		current:  make(map[common.Key]bool),
		previous: make(map[common.Key]bool),
	}
}

func (i *inputTracker) Bind(w window.Window) {
	w.SetKeyDownCallback(i.PushKeyDown)
	w.SetKeyUpCallback(i.PushKeyUp)
}

func (i *inputTracker) NewFrame() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.previous, i.current = i.current, i.previous
	clear(i.current)
	for k, down := range i.live {
		if down {
			i.current[k] = true
		}
	}
}

func (i *inputTracker) IsDown(key common.Key) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current[key]
}

func (i *inputTracker) WasPressed(key common.Key) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current[key] && !i.previous[key]
}

func (i *inputTracker) PushKeyDown(key common.Key) {
	if key == common.KeyUnknown {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.live[key] = true
}

func (i *inputTracker) PushKeyUp(key common.Key) {
	if key == common.KeyUnknown {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.live[key] = false
}
