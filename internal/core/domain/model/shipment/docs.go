// Package shipment implements the shipment lifecycle: a closed status enum with
// its transition rules, the append-only tracking log and the frozen price.
//
// Lifecycle:
//
//	IN_TRANSIT -> SORTING_CENTER -> OUT_FOR_DELIVERY -> DELIVERED
//	     \______________\___________________\_________> FAILED
//
// Moves may skip forward stages and may repeat the current stage to report a
// new location. Moving backwards or leaving a terminal state is rejected with
// errs.InvalidStateError.
package shipment
