// Package seq provides the generic ordered sequence used as the building
// block of the null-safe collections.
//
// ArrayList stores elements in a slice, LinkedList in a gods doubly linked
// list, and Synchronized adds a mutex around any Sequence. None of them
// inspect the elements they store; an absent value is accepted like any
// other. Index errors carry the INDEX_OUT_OF_RANGE code and match
// ErrIndexOutOfRange.
package seq
