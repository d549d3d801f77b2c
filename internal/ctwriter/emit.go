package ctwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"aiectgen/internal/artifact"
	"aiectgen/internal/counter"
)

// telemetryFilename is where the generated script, once executed by the
// trace engine, serializes its collected telemetry.
const telemetryFilename = "aie_profile_counters.json"

// writeFile renders the script and writes it to the fixed output path in
// the current working directory. A creation failure is logged and reported;
// no partial file remains.
func (w *Writer) writeFile(artifacts []*artifact.Info, allCounters []*counter.Counter) bool {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	outputPath := filepath.Join(cwd, OutputFilename)

	script := renderScript(artifacts, allCounters)
	if err := os.WriteFile(outputPath, []byte(script), 0o644); err != nil {
		w.log.Warn("unable to create CT file", zap.String("path", outputPath), zap.Error(err))
		return false
	}

	w.log.Info("generated CT file", zap.String("path", outputPath))
	return true
}

// renderScript produces the complete CT script text. The grammar is fixed
// by the trace-scripting engine: a begin block, one probe block per
// artifact that has both instrumentation points and counters, and an end
// block. Embedded sub-blocks are bracketed by @blockopen/@blockclose.
func renderScript(artifacts []*artifact.Info, allCounters []*counter.Counter) string {
	var b strings.Builder

	b.WriteString("# Auto-generated CT file for AIE Profile counters\n")
	b.WriteString("# Generated by XRT AIE Profile Plugin\n\n")

	renderBegin(&b, allCounters)
	for _, a := range artifacts {
		renderProbe(&b, a)
	}
	renderEnd(&b)

	return b.String()
}

func renderBegin(b *strings.Builder, allCounters []*counter.Counter) {
	b.WriteString("begin\n")
	b.WriteString("{\n")
	b.WriteString("    ts_start = timestamp32()\n")
	b.WriteString("    print(\"\\nAIE Profile tracing started\\n\")\n")
	b.WriteString("@blockopen\n")
	b.WriteString("import json\n")
	b.WriteString("import os\n")
	b.WriteString("\n")
	b.WriteString("# Initialize data collection\n")
	b.WriteString("profile_data = {\n")
	b.WriteString("    \"start_timestamp\": ts_start,\n")
	b.WriteString("    \"counter_metadata\": [\n")

	for i, c := range allCounters {
		fmt.Fprintf(b, "        {\"column\": %d, \"row\": %d, \"counter\": %d, \"module\": %q, \"address\": %q}",
			c.Column, c.Row, c.Number, c.Module, counter.FormatAddress(c.Address))
		if i < len(allCounters)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("    ],\n")
	b.WriteString("    \"probes\": []\n")
	b.WriteString("}\n")
	b.WriteString("@blockclose\n")
	b.WriteString("}\n\n")
}

// renderProbe emits one probe block. Artifacts without instrumentation
// points or without assigned counters produce nothing at all, not an empty
// block.
func renderProbe(b *strings.Builder, a *artifact.Info) {
	if len(a.Points) == 0 || len(a.Counters) == 0 {
		return
	}

	basename := filepath.Base(a.Path)

	fmt.Fprintf(b, "# Probes for %s (columns %d-%d)\n", basename, a.ColumnStart, a.ColumnEnd)

	lines := make([]string, len(a.Points))
	for i, p := range a.Points {
		lines[i] = fmt.Sprintf("%d", p.Line)
	}
	fmt.Fprintf(b, "probe:%s:uc%d:line%s\n", basename, a.ControllerIndex, strings.Join(lines, ","))

	b.WriteString("{\n")
	b.WriteString("    ts = timestamp32()\n")
	for i, c := range a.Counters {
		fmt.Fprintf(b, "    ctr_%d = read_reg(%s)\n", i, counter.FormatAddress(c.Address))
	}
	b.WriteString("    print(f\"Probe fired: ts={ts}\")\n")
	b.WriteString("@blockopen\n")
	b.WriteString("profile_data[\"probes\"].append({\n")
	fmt.Fprintf(b, "    \"asm_file\": %q,\n", basename)
	b.WriteString("    \"timestamp\": ts,\n")
	b.WriteString("    \"counters\": [")
	for i := range a.Counters {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "ctr_%d", i)
	}
	b.WriteString("]\n")
	b.WriteString("})\n")
	b.WriteString("@blockclose\n")
	b.WriteString("}\n\n")
}

func renderEnd(b *strings.Builder) {
	b.WriteString("end\n")
	b.WriteString("{\n")
	b.WriteString("    ts_end = timestamp32()\n")
	b.WriteString("    print(\"\\nAIE Profile tracing ended\\n\")\n")
	b.WriteString("@blockopen\n")
	b.WriteString("profile_data[\"end_timestamp\"] = ts_end\n")
	b.WriteString("profile_data[\"total_time\"] = ts_end - profile_data[\"start_timestamp\"]\n")
	b.WriteString("\n")
	fmt.Fprintf(b, "output_path = os.path.join(os.getcwd(), %q)\n", telemetryFilename)
	b.WriteString("with open(output_path, \"w\") as f:\n")
	b.WriteString("    json.dump(profile_data, f, indent=2)\n")
	b.WriteString("print(f\"Profile data written to {output_path}\")\n")
	b.WriteString("@blockclose\n")
	b.WriteString("}\n")
}
