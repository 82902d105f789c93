/*
Package nullsafe provides ordered sequences that never hold an absent value.

Package: nullsafe
Title: Null-Safe Ordered Sequences
Description: Two variants behind one capability. Decorator wraps an existing
             seq.Sequence and guards its mutating calls; ArrayList owns its
             storage and overrides the mutating methods of seq.ArrayList.
Author: msto63
Version: v0.1.0
Created: 2026-10-14
Modified: 2026-10-16

Change History:
- 2026-10-14 v0.1.0: Decorator, specialized ArrayList and constructors
- 2026-10-16 v0.1.1: Custom absence detectors

# Guarantee

After every call that returns, no slot holds an absent value. Append,
Insert, Set, AppendAll and InsertAll validate before they mutate:

  - an absent value, or any absent element of a batch, fails with
    NULL_ARGUMENT, even when the index is also illegal;
  - otherwise an illegal index fails with INDEX_OUT_OF_RANGE;
  - a failed call changes nothing, batches included.

Reads, removal and Clear are never checked. Errors match ErrNullArgument
and ErrIndexOutOfRange through errors.Is.

# Choosing a variant

	backing := seq.NewLinkedList[*Order]()
	orders, err := nullsafe.Wrap[*Order](backing)    // decoration

	orders, err := nullsafe.NewArrayList[*Order](64) // specialization

Code written against List[T] works with either. A Decorator owns its
backing sequence; mutating the backing through another reference voids the
guarantee. Neither variant is safe for concurrent use; wrap the backing in
seq.Synchronize for that.

# Absence

By default nil pointers, interfaces, maps, slices, funcs and channels are
absent, as are values whose IsAbsent method returns true. WithAbsence
supplies a different detector:

	scores, err := nullsafe.NewArrayList[int](0, nullsafe.WithAbsence[int](func(v int) bool {
		return v < 0
	}))
*/
package nullsafe
