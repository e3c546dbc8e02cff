// Package parallel runs a user Processor over a record stream with one
// producer goroutine and a fixed set of worker goroutines.
//
// The producer fills slots from a Source in file order and publishes them on
// a FIFO ready queue; workers take whichever slot is available first, call
// the Processor once per record in slot order, then OnBatchComplete, then
// hand the slot back. Order is guaranteed only within a slot. With one
// worker the whole stream is processed in source order.
//
// Each worker owns a private clone of the template Processor, made once at
// start-up. Anything the clones must share (totals, writers) belongs in a
// Counter, a Guarded value, or another handle the caller constructs once and
// copies by pointer into every clone. Reductions done in OnBatchComplete must
// be order-independent, since batches complete in no fixed order.
//
// The first error from any goroutine is the one Run returns. A worker error
// stops the run at every goroutine's next blocking point; a source error
// stops filling, drops the partial slot and lets already-published slots
// drain before the workers exit.
package parallel
