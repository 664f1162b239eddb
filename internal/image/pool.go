package image

import "sync"

// Pool is a thread-safe Allocator that reuses released buffers.
//
// Pool groups buffers by their dimensions and format, so a per-frame loop that
// keeps producing identically sized results stops allocating once the pool
// is warm. Buffers obtained from Allocate are always zeroed.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
	alloc   Allocator
}

// poolKey identifies a bucket of identical buffer specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
// Misses are served by next, or by a default HeapAllocator when next is nil.
func NewPool(maxPerBucket int, next Allocator) *Pool {
	if next == nil {
		next = HeapAllocator{}
	}
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
		alloc:   next,
	}
}

// Allocate implements Allocator.
// It pops a released buffer of the same size and format, or falls through
// to the underlying allocator.
func (p *Pool) Allocate(width, height int, format Format) (*Buffer, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return p.alloc.Allocate(width, height, format)
}

// Release returns a buffer to the pool for reuse.
// The caller must not use buf afterwards. Views, padded buffers and nil are
// discarded, as are buffers arriving at a full bucket.
func (p *Pool) Release(buf *Buffer) {
	if buf.IsEmpty() || buf.stride != buf.format.RowBytes(buf.width) ||
		len(buf.data) != buf.stride*buf.height {
		return
	}

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of idle buffers held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
