package novelpub

import "errors"

// Sentinel errors returned by the novelpub package.
var (
	// ErrNoChapters indicates an export was requested for a novel
	// directory that yielded no usable chapters.
	ErrNoChapters = errors.New("novelpub: no chapters to export")

	// ErrChapterDirNotFound indicates the per-chapter text directory
	// does not exist under the novel directory.
	ErrChapterDirNotFound = errors.New("novelpub: chapters directory not found")
)
