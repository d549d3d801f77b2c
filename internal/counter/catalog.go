package counter

import (
	"go.uber.org/zap"

	"aiectgen/internal/devicedb"
)

// Resolver turns device database counter records into address-resolved
// counters. The device geometry is read once at construction and held for
// the resolver's lifetime.
type Resolver struct {
	geom Geometry
	log  *zap.Logger
}

// NewResolver creates a resolver using the geometry of the given device
// metadata.
func NewResolver(meta devicedb.Metadata, log *zap.Logger) *Resolver {
	geom := meta.Geometry()
	return &Resolver{
		geom: Geometry{ColumnShift: geom.ColumnShift, RowShift: geom.RowShift},
		log:  log,
	}
}

// Geometry returns the geometry captured at construction.
func (r *Resolver) Geometry() Geometry {
	return r.geom
}

// Catalog fetches every configured counter for a device and resolves its
// register address. Records the store cannot produce are skipped silently.
func (r *Resolver) Catalog(store devicedb.Store, deviceID uint64) []*Counter {
	var counters []*Counter

	total := store.CounterCount(deviceID)
	for i := 0; i < total; i++ {
		record, ok := store.CounterAt(deviceID, i)
		if !ok {
			continue
		}

		counters = append(counters, &Counter{
			Column:  record.Column,
			Row:     record.Row,
			Number:  record.Counter,
			Module:  record.Module,
			Address: Address(record.Column, record.Row, record.Counter, record.Module, r.geom),
		})
	}

	r.log.Debug("retrieved configured counters",
		zap.Uint64("device", deviceID),
		zap.Int("count", len(counters)))

	return counters
}

// FilterByColumn returns the subset of counters whose column falls inside
// [colStart, colEnd], both ends inclusive. The result shares the input's
// Counter pointers; nothing is copied.
func FilterByColumn(all []*Counter, colStart, colEnd int) []*Counter {
	var filtered []*Counter
	for _, c := range all {
		if int(c.Column) >= colStart && int(c.Column) <= colEnd {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
