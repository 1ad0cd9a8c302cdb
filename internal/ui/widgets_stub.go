//go:build !ebiten

package ui

import "image"

// HueStrip is a no-op placeholder for headless builds.
type HueStrip struct{}

// NewHueStrip returns nil in the headless build.
func NewHueStrip(image.Rectangle, int, func(int)) *HueStrip { return nil }

// Press never claims events in the headless build.
func (s *HueStrip) Press(int, int) bool { return false }

// Drag is a no-op in the headless build.
func (s *HueStrip) Drag(int, int) {}

// Release is a no-op in the headless build.
func (s *HueStrip) Release() {}

// Interacting always reports false in the headless build.
func (s *HueStrip) Interacting() bool { return false }

// Button is a no-op placeholder for headless builds.
type Button struct{}

// NewButton returns nil in the headless build.
func NewButton(image.Rectangle, string, func()) *Button { return nil }

// Press never claims events in the headless build.
func (b *Button) Press(int, int) bool { return false }
