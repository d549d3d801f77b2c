package devicedb

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// deviceEntry is the per-device node of the database file.
type deviceEntry struct {
	Geometry GeometryRecord  `yaml:"geometry"`
	Counters []CounterRecord `yaml:"counters"`
}

// fileSchema is the top-level shape of the database file:
//
//	devices:
//	  0:
//	    geometry: {column_shift: 25, row_shift: 20}
//	    counters:
//	      - {column: 0, row: 2, counter: 0, module: aie}
type fileSchema struct {
	Devices map[uint64]deviceEntry `yaml:"devices"`
}

// FileStore is a YAML-file-backed device database. It implements Store and
// hands out per-device Metadata views.
type FileStore struct {
	devices map[uint64]deviceEntry
	log     *zap.Logger
}

// LoadFileStore reads and decodes a device database file.
func LoadFileStore(path string, log *zap.Logger) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device database %s: %w", path, err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse device database %s: %w", path, err)
	}

	log.Debug("loaded device database",
		zap.String("path", path),
		zap.Int("devices", len(schema.Devices)))

	return &FileStore{devices: schema.Devices, log: log}, nil
}

// CounterCount implements Store.
func (s *FileStore) CounterCount(deviceID uint64) int {
	return len(s.devices[deviceID].Counters)
}

// CounterAt implements Store.
func (s *FileStore) CounterAt(deviceID uint64, i int) (CounterRecord, bool) {
	counters := s.devices[deviceID].Counters
	if i < 0 || i >= len(counters) {
		return CounterRecord{}, false
	}
	return counters[i], true
}

// Metadata returns the geometry view of one device. An unknown device yields
// zero shifts.
func (s *FileStore) Metadata(deviceID uint64) Metadata {
	return deviceMetadata{geom: s.devices[deviceID].Geometry}
}

type deviceMetadata struct {
	geom GeometryRecord
}

func (m deviceMetadata) Geometry() GeometryRecord {
	return m.geom
}
