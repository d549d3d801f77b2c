package counter

import "fmt"

// Module kind strings as stored in the device database.
const (
	ModuleCore    = "aie"
	ModuleMemory  = "aie_memory"
	ModuleMemTile = "memory_tile"
	ModuleShim    = "interface_tile"
)

// Base register offsets of the performance counter banks, per module kind.
const (
	coreModuleBaseOffset   uint64 = 0x00010000
	memoryModuleBaseOffset uint64 = 0x00020000
	memTileBaseOffset      uint64 = 0x00080000
	shimTileBaseOffset     uint64 = 0x00040000
)

// moduleBaseOffsets maps a module kind to its counter bank base offset.
var moduleBaseOffsets = map[string]uint64{
	ModuleCore:    coreModuleBaseOffset,
	ModuleMemory:  memoryModuleBaseOffset,
	ModuleMemTile: memTileBaseOffset,
	ModuleShim:    shimTileBaseOffset,
}

// bytesPerCounter is the register stride between adjacent counters.
const bytesPerCounter = 4

// Counter is one configured hardware counter with its resolved register
// address. Counters are immutable after resolution and shared by pointer
// between the full catalog and per-artifact subsets.
type Counter struct {
	Column  uint8
	Row     uint8
	Number  uint8
	Module  string
	Address uint64
}

// Geometry holds the address bit positions of the column and row fields,
// fixed per device.
type Geometry struct {
	ColumnShift uint
	RowShift    uint
}

// ModuleBaseOffset returns the counter bank base offset for a module kind.
// Unrecognized kinds fall back to the core module offset.
func ModuleBaseOffset(module string) uint64 {
	if offset, ok := moduleBaseOffsets[module]; ok {
		return offset
	}
	return coreModuleBaseOffset
}

// Address computes the physical register address of a counter. The
// computation is pure: identical inputs always yield the identical address.
func Address(column, row, number uint8, module string, geom Geometry) uint64 {
	tileAddress := uint64(column)<<geom.ColumnShift | uint64(row)<<geom.RowShift
	return tileAddress + ModuleBaseOffset(module) + uint64(number)*bytesPerCounter
}

// FormatAddress renders an address as "0x" followed by ten zero-padded
// lowercase hex digits, the fixed width expected by the trace-scripting
// engine.
func FormatAddress(address uint64) string {
	return fmt.Sprintf("0x%010x", address)
}
