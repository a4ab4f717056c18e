package jobs

import (
	"strconv"
	"sync/atomic"
)

// idAllocator is a monotone, non-wrapping (modulo uint32 overflow) job-id
// source. The zero value is ready to use and yields "0" first.
type idAllocator struct {
	next uint32
}

// nextID returns the current counter value, serialised as decimal, then
// advances it. Two concurrent callers never observe the same value.
func (a *idAllocator) nextID() string {
	v := atomic.AddUint32(&a.next, 1) - 1
	return strconv.FormatUint(uint64(v), 10)
}
