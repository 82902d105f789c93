/*
Package validation decides whether a mutating sequence operation may proceed.

Package: validation
Title: Sequence Validation Core
Description: Pure validation of the arguments of append, insert, assign and
             their batch forms. No storage, no logging, no mutation.
Author: msto63
Version: v0.1.0
Created: 2026-10-13
Modified: 2026-10-15

Change History:
- 2026-10-13 v0.1.0: Guard, operations and absence detection

# Check order

Every validated operation checks its value(s) for absence before it looks at
the index. An absent value at an illegal index is therefore reported as
NULL_ARGUMENT, never as INDEX_OUT_OF_RANGE:

	g := validation.NewGuard[*string](nil)
	err := g.ValidateSingle(validation.OpInsert, -1, 0, nil)
	errors.Is(err, validation.ErrNullArgument) // true

Batch operations scan the complete batch first. A batch with an absent
element anywhere fails before any index check, so callers can validate and
then mutate without ever observing a partial insert.

# Index bounds

	OpAppend, OpInsert, OpAppendAll, OpInsertAll: 0 <= index <= size
	OpAssign:                                     0 <= index <  size

# Absence

IsAbsent treats nil references as absent. Value types are never absent
unless they implement Absenter. A Guard can be given its own AbsenceFunc
for element types with a different notion of "no value".

# Collected results

Inspect reports every absent position as a ValidationResult, which converts
to a coded error with ToError.
*/
package validation
