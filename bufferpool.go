package frost

// bufferPool manages reusable pixel buffers keyed by exact dimensions. After
// warmup, acquire/release are zero-alloc for a steady button size.
type bufferPool struct {
	buckets map[uint64][]PixelBuffer
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(uint32(w))<<32 | uint64(uint32(h))
}

// acquire returns a buffer of exactly (w, h) pixels. The contents are
// unspecified; callers must overwrite every sample before reading.
func (p *bufferPool) acquire(w, h int) PixelBuffer {
	key := poolKey(w, h)
	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			buf := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			return buf
		}
	}
	return NewPixelBuffer(w, h)
}

// release returns a buffer to the pool for reuse.
func (p *bufferPool) release(buf PixelBuffer) {
	if buf.Pix == nil {
		return
	}
	if p.buckets == nil {
		p.buckets = make(map[uint64][]PixelBuffer)
	}
	key := poolKey(buf.Width, buf.Height)
	p.buckets[key] = append(p.buckets[key], buf)
}

// reset drops every pooled buffer. Called on resize, when old sizes are
// unlikely to be requested again.
func (p *bufferPool) reset() {
	p.buckets = nil
}

// pooled returns the number of buffers currently held for (w, h).
func (p *bufferPool) pooled(w, h int) int {
	return len(p.buckets[poolKey(w, h)])
}
