// Package rtabi defines the object sizes shared between the type model and
// the memory simulator.
// These values must be kept in sync with the simulator's address-space layout.
package rtabi

// Builtin type sizes in bytes
const (
	SizeVoid    = 0
	SizeUnknown = 4
	SizeChar    = 1
	SizeBool    = 1
	SizeInt     = 4
	SizeSizeT   = 8
	SizeFloat   = 4
	SizeDouble  = 8
	SizeString  = 4 // handle into the simulator's string table
	SizeStream  = 4 // ostream / istream handle
	SizeEnum    = 4
	SizePtr     = 8
	SizeFunc    = 0
)

// SizeEmptyClass is the size given to a class with no base and no object
// members. Distinct objects need distinct addresses.
const SizeEmptyClass = 1

// MinArraySize is the storage size of an array whose proper size is zero.
const MinArraySize = 1

// NullAddress is the address value of a null pointer.
const NullAddress = 0
