// Package pathtracererr centralizes the fatal input-error constructors and
// the one non-fatal construction warning spec.md §7 names, wrapping
// github.com/pkg/errors so every fatal error carries a stack trace back to
// its origin at the process boundary.
package pathtracererr

import "github.com/pkg/errors"

// ErrMissingFile wraps a missing or unreadable image/mesh file path into a
// fatal, stack-annotated error.
func ErrMissingFile(path string, cause error) error {
	return errors.Wrapf(cause, "missing or unreadable file %q", path)
}

// ErrUnsupportedChannels reports an image decoded with a channel count
// outside {3,4}.
func ErrUnsupportedChannels(path string, channels int) error {
	return errors.Errorf("unsupported channel count %d in %q (expected 3 or 4)", channels, path)
}

// ErrUnsupportedExtension reports an output path whose extension isn't one
// of the pixel-buffer I/O facade's recognized formats.
func ErrUnsupportedExtension(path string) error {
	return errors.Errorf("unsupported file extension in %q (expected .png, .jpg, .bmp, .tga or .hdr)", path)
}

// ErrNoBoundingBox is the one non-fatal construction warning: a BVH child
// reported no bounding box. It is logged, not returned, so construction
// continues with a possibly-incorrect BVH box (spec.md §7).
func ErrNoBoundingBox(childDescription string) error {
	return errors.Errorf("construction warning: %s reports no bounding box; BVH box may be incorrect", childDescription)
}
