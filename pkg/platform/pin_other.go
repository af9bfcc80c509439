//go:build !windows

package platform

type noopPinner struct{}

// NewPinner returns a no-op pinner; the toolkit floating flag is all
// this platform gets.
func NewPinner(string) Pinner {
	return noopPinner{}
}

func (noopPinner) PinTopmost() error { return nil }
