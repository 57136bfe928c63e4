// Package fleet contains the drivers and vehicles that rounds may be assigned to.
// Removing either never removes a round: rounds simply lose the reference.
package fleet
