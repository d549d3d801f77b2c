// Package devicedb exposes the static device database consumed by the CT
// file generator.
//
// The pipeline itself only depends on two small capabilities:
//
//   - Store - enumerate the hardware counters configured for a device
//   - Metadata - the geometry shift constants of a device
//
// FileStore implements both on top of a YAML device database file.
package devicedb

// CounterRecord describes one configured hardware counter as stored in the
// device database. Placement is a tile coordinate plus the counter's ordinal
// within its module.
type CounterRecord struct {
	Column  uint8  `yaml:"column"`
	Row     uint8  `yaml:"row"`
	Counter uint8  `yaml:"counter"`
	Module  string `yaml:"module"`
}

// GeometryRecord holds the address geometry of a device: the bit positions
// of the column and row fields inside a tile register address.
type GeometryRecord struct {
	ColumnShift uint `yaml:"column_shift"`
	RowShift    uint `yaml:"row_shift"`
}

// Store enumerates the counters configured for a device.
type Store interface {
	// CounterCount returns the number of configured counters for the device,
	// zero if the device is unknown.
	CounterCount(deviceID uint64) int

	// CounterAt returns the counter at the given ordinal. The second return
	// value is false when the ordinal is out of range or the device is
	// unknown.
	CounterAt(deviceID uint64, i int) (CounterRecord, bool)
}

// Metadata supplies the geometry of one device. It is read once at
// construction of the address resolver and held for the run.
type Metadata interface {
	Geometry() GeometryRecord
}
