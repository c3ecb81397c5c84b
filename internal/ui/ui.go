// Package ui declares the abstract surfaces the control loop talks to for
// on-screen feedback. Per spec.md §1/§2, their rendering is out of scope —
// this package specifies only the interfaces the control loop depends on,
// so the notification popup and status bar can be implemented and swapped
// independently of the window manager core.
package ui

import "github.com/BurntSushi/xgb/xproto"

// Notifier is the notification stack: a set of always-on-top overlay
// windows the control loop must re-raise above tiled windows and must
// offer input events to before treating them as directed at a client.
type Notifier interface {
	// Notify posts a message (e.g. a configuration parse failure, spec.md
	// §7's recoverable-error path).
	Notify(message string)

	// HandleButtonPress offers a ButtonPress to the notification stack
	// first (spec.md §4.5.1); it returns true if the stack consumed the
	// event, meaning the control loop must stop further dispatch.
	HandleButtonPress(ev xproto.ButtonPressEvent) bool

	// HandleExpose forwards an Expose event (spec.md §4.5.1).
	HandleExpose(ev xproto.ExposeEvent)

	// IsNotificationWindow reports whether win belongs to the notification
	// stack, used by EnterNotify to skip focus-follows-mouse handling
	// (spec.md §4.5.1).
	IsNotificationWindow(win xproto.Window) bool

	// Raise restacks every notification window above tiled content, called
	// after any layout change (spec.md §4.5.1's "re-raise ... so tiled
	// layouts never cover overlays").
	Raise()
}

// StatusBar is the external status surface. The control loop holds one but
// none of its handlers call these methods: workspace switches and
// window-count changes are not pushed to it.
type StatusBar interface {
	SetCurrentWorkspace(index int)
	SetWindowCount(n int)
}

// NoopNotifier is used when notifications_enabled is false in
// configuration, or until a real notification surface is wired in.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string)                                  {}
func (NoopNotifier) HandleButtonPress(xproto.ButtonPressEvent) bool { return false }
func (NoopNotifier) HandleExpose(xproto.ExposeEvent)                {}
func (NoopNotifier) IsNotificationWindow(xproto.Window) bool        { return false }
func (NoopNotifier) Raise()                                         {}

// NoopStatusBar is used when no status bar is configured.
type NoopStatusBar struct{}

func (NoopStatusBar) SetCurrentWorkspace(int) {}
func (NoopStatusBar) SetWindowCount(int)      {}
