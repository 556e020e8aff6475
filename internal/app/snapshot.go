package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SnapshotSink keeps a copy of the most recently presented frame.
type SnapshotSink struct {
	last *image.RGBA
}

// Present copies frame.
func (s *SnapshotSink) Present(frame *image.RGBA) error {
	if s.last == nil || s.last.Rect != frame.Rect {
		s.last = image.NewRGBA(frame.Rect)
	}
	copy(s.last.Pix, frame.Pix)
	return nil
}

// Last returns the last presented frame, or nil if none was presented.
func (s *SnapshotSink) Last() *image.RGBA { return s.last }

// WritePNG encodes the last frame to path.
func (s *SnapshotSink) WritePNG(path string) error {
	if s.last == nil {
		return fmt.Errorf("write %q: no frame was rendered", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := png.Encode(f, s.last); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
