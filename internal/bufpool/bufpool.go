package bufpool

import "github.com/valyala/bytebufferpool"

// pool holds buffers used while aggregating stream output. A dedicated pool
// keeps bytebufferpool's size-class calibration tuned to aggregation
// workloads instead of sharing statistics with unrelated users of the
// library-wide default pool.
var pool bytebufferpool.Pool

// Get returns an empty buffer from the pool.
func Get() *bytebufferpool.ByteBuffer {
	return pool.Get()
}

// Put resets buf and returns it to the pool. The buffer must not be used
// after Put.
func Put(buf *bytebufferpool.ByteBuffer) {
	pool.Put(buf)
}
