// Package bufpool provides pooled byte buffers for accumulating drained
// stream content.
package bufpool
