// Package bus provides a typed publish/subscribe hub that decouples engine
// state changes from their consumers. Delivery is best-effort and
// non-blocking: a slow subscriber loses events instead of stalling the
// publisher, because the publisher is the reader loop of a live engine
// process and backpressure there would propagate into the child's output
// pipe.
package bus
