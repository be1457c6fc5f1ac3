package frost

import "testing"

func TestBufferPoolAcquireSize(t *testing.T) {
	var p bufferPool
	b := p.acquire(220, 146)
	if b.Width != 220 || b.Height != 146 || len(b.Pix) != 220*146*4 {
		t.Errorf("acquire = %dx%d len %d, want 220x146", b.Width, b.Height, len(b.Pix))
	}
}

func TestBufferPoolReuse(t *testing.T) {
	var p bufferPool
	b := p.acquire(8, 8)
	p.release(b)
	if n := p.pooled(8, 8); n != 1 {
		t.Fatalf("pooled = %d, want 1", n)
	}
	c := p.acquire(8, 8)
	if &c.Pix[0] != &b.Pix[0] {
		t.Error("acquire after release did not reuse the buffer")
	}
	if n := p.pooled(8, 8); n != 0 {
		t.Errorf("pooled = %d, want 0", n)
	}
}

func TestBufferPoolKeyedBySize(t *testing.T) {
	var p bufferPool
	p.release(p.acquire(8, 4))
	c := p.acquire(4, 8)
	if c.Width != 4 || c.Height != 8 {
		t.Errorf("acquire = %dx%d, want 4x8", c.Width, c.Height)
	}
	if n := p.pooled(8, 4); n != 1 {
		t.Errorf("pooled(8,4) = %d, want 1", n)
	}
}

func TestBufferPoolReset(t *testing.T) {
	var p bufferPool
	p.release(p.acquire(3, 3))
	p.reset()
	if n := p.pooled(3, 3); n != 0 {
		t.Errorf("pooled after reset = %d, want 0", n)
	}
}

func TestBufferPoolReleaseEmpty(t *testing.T) {
	var p bufferPool
	p.release(PixelBuffer{})
	if p.buckets != nil {
		t.Error("releasing an empty buffer allocated buckets")
	}
}
