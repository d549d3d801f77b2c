// Package artifact discovers and models the per-group AIE runtime control
// programs.
//
// Each generated assembly file aie_runtime_control<id>.asm drives one group
// of four consecutive array columns. The group id from the filename fixes
// the controller index and the column range; instrumentation points and
// assigned counters are filled in by later pipeline stages.
package artifact

import (
	"strconv"
	"strings"

	"aiectgen/internal/asmscan"
	"aiectgen/internal/counter"
)

const (
	namePrefix = "aie_runtime_control"
	nameSuffix = ".asm"

	// columnsPerGroup is the number of consecutive array columns one
	// runtime control program drives.
	columnsPerGroup = 4
)

// Info is one discovered runtime control program.
type Info struct {
	// Path is the filesystem location of the assembly file.
	Path string
	// GroupID is the integer parsed from the filename.
	GroupID int
	// ControllerIndex is the microcontroller index driving this group.
	ControllerIndex int
	// ColumnStart and ColumnEnd bound the group's column range, inclusive.
	ColumnStart int
	ColumnEnd   int

	// Points holds the instrumentation points found in the program, in
	// file order.
	Points []asmscan.Point
	// Counters holds the configured counters whose column falls inside
	// this group's range, in catalog order.
	Counters []*counter.Counter
}

// NewInfo builds an Info for a discovered file, deriving the controller
// index and column range from the group id.
func NewInfo(path string, groupID int) *Info {
	colStart := groupID * columnsPerGroup
	return &Info{
		Path:            path,
		GroupID:         groupID,
		ControllerIndex: groupID * columnsPerGroup,
		ColumnStart:     colStart,
		ColumnEnd:       colStart + columnsPerGroup - 1,
	}
}

// ParseName parses a filename of the form aie_runtime_control<digits>.asm
// and returns the group id. The match is exact: fixed prefix, at least one
// digit, fixed suffix, nothing else.
func ParseName(name string) (int, bool) {
	if !strings.HasPrefix(name, namePrefix) || !strings.HasSuffix(name, nameSuffix) {
		return 0, false
	}

	digits := name[len(namePrefix) : len(name)-len(nameSuffix)]
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	groupID, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return groupID, true
}
