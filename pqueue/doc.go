// Package pqueue provides a priority queue over three fixed priority levels
// (Low, Medium, High).
//
// Dequeue always returns an element of the highest priority currently held;
// among equal priorities the earliest enqueued element wins (FIFO within a
// level). Each level is an independent FIFO sub-queue, so the tie-break is
// structural rather than computed.
//
// Enqueue with a priority outside the three levels is ignored without an
// error; it is the only validation the package performs.
//
//	pq := pqueue.New[string]()
//	pq.Enqueue("low", pqueue.Low)
//	pq.Enqueue("urgent", pqueue.High)
//	v, _ := pq.Dequeue() // "urgent"
package pqueue
