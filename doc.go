// Package procstream drains the output streams of external processes without
// risking pipe backpressure deadlock.
//
// A process with both stdout and stderr piped blocks as soon as either pipe
// buffer fills while nothing is reading it. procstream attaches one handler
// per stream, either a [Consumer] that discards content or a [Processor]
// that aggregates it into a typed result, and lets the handlers drain
// concurrently so neither stream can stall the other.
//
// # Basic Usage
//
//	cmd := exec.Command("git", "status", "--porcelain")
//	stdout, _ := cmd.StdoutPipe()
//	stderr, _ := cmd.StderrPipe()
//
//	agg, err := procstream.NewLineAggregator(stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	disc, err := procstream.NewDiscard(stderr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := cmd.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
//	task := procstream.ProcessAsync(agg) // aggregate stdout in the background
//	if err := disc.Consume(); err != nil { // discard stderr on this goroutine
//	    log.Fatal(err)
//	}
//	out, err := task.Wait(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = cmd.Wait()
//
// [CaptureOutput] wires all of the above for the common case of "give me
// stdout as a string, throw stderr away".
//
// # Stream Ownership
//
// Each handler exclusively owns its bound stream for reading. A stream's
// read position is a single cursor; attaching two handlers to one stream
// corrupts ordering. This is a usage invariant, not enforced by the types.
//
// Within one handler, content is consumed in producer order. Two handlers
// on two different streams race against each other by design; that race is
// what keeps the producing process unblocked.
package procstream
