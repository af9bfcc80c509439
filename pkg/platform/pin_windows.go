//go:build windows

package platform

import (
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW  = user32.NewProc("FindWindowW")
	procSetWindowPos = user32.NewProc("SetWindowPos")
)

const (
	hwndTopmost   = ^uintptr(0) // (HWND)-1
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

type winPinner struct {
	title string
	hwnd  windows.Handle
}

// NewPinner resolves the overlay window by its title and pins it with
// HWND_TOPMOST. The handle is resolved lazily because the window does
// not exist yet when the overlay is constructed.
func NewPinner(windowTitle string) Pinner {
	return &winPinner{title: windowTitle}
}

func (p *winPinner) PinTopmost() error {
	if p.hwnd == 0 {
		titlePtr, err := windows.UTF16PtrFromString(p.title)
		if err != nil {
			return pkgerrors.Wrap(err, "invalid window title")
		}
		h, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
		if h == 0 {
			return pkgerrors.Errorf("window %q not found", p.title)
		}
		p.hwnd = windows.Handle(h)
	}

	r, _, callErr := procSetWindowPos.Call(
		uintptr(p.hwnd), hwndTopmost,
		0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	if r == 0 {
		// Stale handle (window recreated); re-resolve on the next tick.
		p.hwnd = 0
		return pkgerrors.Wrap(callErr, "SetWindowPos failed")
	}
	return nil
}
