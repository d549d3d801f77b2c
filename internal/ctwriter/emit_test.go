package ctwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiectgen/internal/artifact"
	"aiectgen/internal/asmscan"
	"aiectgen/internal/counter"
)

const goldenScript = `# Auto-generated CT file for AIE Profile counters
# Generated by XRT AIE Profile Plugin

begin
{
    ts_start = timestamp32()
    print("\nAIE Profile tracing started\n")
@blockopen
import json
import os

# Initialize data collection
profile_data = {
    "start_timestamp": ts_start,
    "counter_metadata": [
        {"column": 5, "row": 2, "counter": 1, "module": "aie_memory", "address": "0x00000202a4"}
    ],
    "probes": []
}
@blockclose
}

# Probes for aie_runtime_control1.asm (columns 4-7)
probe:aie_runtime_control1.asm:uc4:line3,5
{
    ts = timestamp32()
    ctr_0 = read_reg(0x00000202a4)
    print(f"Probe fired: ts={ts}")
@blockopen
profile_data["probes"].append({
    "asm_file": "aie_runtime_control1.asm",
    "timestamp": ts,
    "counters": [ctr_0]
})
@blockclose
}

end
{
    ts_end = timestamp32()
    print("\nAIE Profile tracing ended\n")
@blockopen
profile_data["end_timestamp"] = ts_end
profile_data["total_time"] = ts_end - profile_data["start_timestamp"]

output_path = os.path.join(os.getcwd(), "aie_profile_counters.json")
with open(output_path, "w") as f:
    json.dump(profile_data, f, indent=2)
print(f"Profile data written to {output_path}")
@blockclose
}
`

func TestRenderScript_Golden(t *testing.T) {
	c := &counter.Counter{Column: 5, Row: 2, Number: 1, Module: counter.ModuleMemory, Address: 0x202a4}
	a := artifact.NewInfo("/build/aie_runtime_control1.asm", 1)
	a.Points = []asmscan.Point{{Line: 3, Index: 7}, {Line: 5, Index: asmscan.NoIndex}}
	a.Counters = []*counter.Counter{c}

	got := renderScript([]*artifact.Info{a}, []*counter.Counter{c})

	assert.Equal(t, goldenScript, got)
}

func TestRenderScript_CounterMetadataCommas(t *testing.T) {
	all := []*counter.Counter{
		{Column: 0, Row: 0, Number: 0, Module: counter.ModuleCore, Address: 0x10000},
		{Column: 1, Row: 0, Number: 1, Module: counter.ModuleCore, Address: 0x10004},
	}

	got := renderScript(nil, all)

	assert.Contains(t, got,
		`        {"column": 0, "row": 0, "counter": 0, "module": "aie", "address": "0x0000010000"},`+"\n"+
			`        {"column": 1, "row": 0, "counter": 1, "module": "aie", "address": "0x0000010004"}`+"\n")
}

func TestRenderScript_SkipsArtifactWithoutPoints(t *testing.T) {
	c := &counter.Counter{Column: 0, Address: 0x10000, Module: counter.ModuleCore}
	a := artifact.NewInfo("aie_runtime_control0.asm", 0)
	a.Counters = []*counter.Counter{c}

	got := renderScript([]*artifact.Info{a}, []*counter.Counter{c})

	assert.NotContains(t, got, "probe:")
}

func TestRenderScript_SkipsArtifactWithoutCounters(t *testing.T) {
	c := &counter.Counter{Column: 20, Address: 0x10000, Module: counter.ModuleCore}
	a := artifact.NewInfo("aie_runtime_control0.asm", 0)
	a.Points = []asmscan.Point{{Line: 1, Index: asmscan.NoIndex}}

	got := renderScript([]*artifact.Info{a}, []*counter.Counter{c})

	assert.NotContains(t, got, "probe:")
}

func TestRenderScript_MultipleCounterReads(t *testing.T) {
	counters := []*counter.Counter{
		{Column: 0, Address: 0x10000, Module: counter.ModuleCore},
		{Column: 1, Address: 0x20004, Module: counter.ModuleMemory},
	}
	a := artifact.NewInfo("aie_runtime_control0.asm", 0)
	a.Points = []asmscan.Point{{Line: 10, Index: asmscan.NoIndex}}
	a.Counters = counters

	got := renderScript([]*artifact.Info{a}, counters)

	require.Contains(t, got, "probe:aie_runtime_control0.asm:uc0:line10\n")
	assert.Contains(t, got, "    ctr_0 = read_reg(0x0000010000)\n")
	assert.Contains(t, got, "    ctr_1 = read_reg(0x0000020004)\n")
	assert.Contains(t, got, `    "counters": [ctr_0, ctr_1]`+"\n")
}

func TestRenderScript_ProbesInGroupOrder(t *testing.T) {
	c0 := &counter.Counter{Column: 1, Address: 0x10000, Module: counter.ModuleCore}
	c1 := &counter.Counter{Column: 5, Address: 0x10004, Module: counter.ModuleCore}

	a0 := artifact.NewInfo("aie_runtime_control0.asm", 0)
	a0.Points = []asmscan.Point{{Line: 2, Index: asmscan.NoIndex}}
	a0.Counters = []*counter.Counter{c0}

	a1 := artifact.NewInfo("aie_runtime_control1.asm", 1)
	a1.Points = []asmscan.Point{{Line: 4, Index: asmscan.NoIndex}}
	a1.Counters = []*counter.Counter{c1}

	got := renderScript([]*artifact.Info{a0, a1}, []*counter.Counter{c0, c1})

	first := strings.Index(got, "probe:aie_runtime_control0.asm:uc0:line2")
	second := strings.Index(got, "probe:aie_runtime_control1.asm:uc4:line4")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}
