// Package ctwriter generates the CT instrumentation script consumed by the
// trace-scripting engine.
//
// A run is a single pass over three inputs: the runtime control programs
// found on disk, the configured hardware counters from the device database,
// and the device geometry. Generation stops at the first empty stage; the
// only failure signal is the boolean result plus log output, and no partial
// script is ever left behind.
package ctwriter

import (
	"go.uber.org/zap"

	"aiectgen/internal/artifact"
	"aiectgen/internal/asmscan"
	"aiectgen/internal/counter"
	"aiectgen/internal/devicedb"
)

// OutputFilename is the fixed name of the generated CT file, created in the
// process's current working directory.
const OutputFilename = "aie_profile.ct"

// Writer orchestrates one CT file generation run.
type Writer struct {
	store    devicedb.Store
	deviceID uint64
	locator  *artifact.Locator
	scanner  *asmscan.Scanner
	resolver *counter.Resolver
	log      *zap.Logger
}

// NewWriter creates a writer searching for runtime control programs under
// root and resolving counters for the given device.
func NewWriter(store devicedb.Store, meta devicedb.Metadata, deviceID uint64, root string, log *zap.Logger) *Writer {
	return &Writer{
		store:    store,
		deviceID: deviceID,
		locator:  artifact.NewLocator(root, log),
		scanner:  asmscan.NewScanner(log),
		resolver: counter.NewResolver(meta, log),
		log:      log,
	}
}

// Generate runs the pipeline and reports whether a CT file was written.
// Every early exit is deterministic: no artifacts, no configured counters,
// or no instrumentation points anywhere means no file.
func (w *Writer) Generate() bool {
	artifacts, err := w.locator.Find()
	if err != nil {
		w.log.Warn("error searching for ASM files", zap.Error(err))
		artifacts = nil
	}
	if len(artifacts) == 0 {
		w.log.Debug("no aie_runtime_control<id>.asm files found, CT file will not be generated")
		return false
	}

	allCounters := w.resolver.Catalog(w.store, w.deviceID)
	if len(allCounters) == 0 {
		w.log.Debug("no AIE counters configured, CT file will not be generated")
		return false
	}

	hasPoints := false
	for _, a := range artifacts {
		a.Points = w.scanner.ScanFile(a.Path)
		if len(a.Points) > 0 {
			hasPoints = true
		}
		a.Counters = counter.FilterByColumn(allCounters, a.ColumnStart, a.ColumnEnd)
	}
	if !hasPoints {
		w.log.Debug("no SAVE_TIMESTAMPS instructions found in ASM files, CT file will not be generated")
		return false
	}

	return w.writeFile(artifacts, allCounters)
}
