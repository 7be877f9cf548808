package status

import (
	"sync/atomic"
)

// MaxLabelLen bounds stored labels; region names and phase tags are short
const MaxLabelLen = 32

// Label is a short text metric, such as the galaxy phase or a region name
// The zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Set stores v truncated to MaxLabelLen bytes
func (l *Label) Set(v string) {
	l.Swap(v)
}

// Swap stores v and returns the previous label, for change detection
func (l *Label) Swap(v string) string {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	if old := l.ptr.Swap(&v); old != nil {
		return *old
	}
	return ""
}

func (l *Label) Value() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
