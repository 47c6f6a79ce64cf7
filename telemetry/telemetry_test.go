package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContext_Default(t *testing.T) {
	// Without a collector attached, FromContext must hand back a
	// usable no-op implementation.
	collector := FromContext(context.Background())
	timer := collector.Start("anything")
	timer.Child("nested").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, "", buf.String())
}

func TestTimingCollector_Tree(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	root := StartTimer(ctx, "search ledger")
	load := root.Child("load ledger")
	load.End()
	match := root.Child("match records")
	match.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	report := buf.String()

	lines := strings.Split(strings.TrimSpace(report), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "search ledger:"))
	assert.True(t, strings.HasPrefix(lines[1], "├─ load ledger:"))
	assert.True(t, strings.HasPrefix(lines[2], "└─ match records:"))
}

func TestTimingCollector_SiblingsAfterEnd(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("root")
	first := collector.Start("first")
	first.End()
	second := collector.Start("second")
	second.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	report := buf.String()

	// Both timers started after the first ended must be siblings,
	// not nested under each other.
	assert.True(t, strings.Contains(report, "├─ first:"))
	assert.True(t, strings.Contains(report, "└─ second:"))
}

func TestTimingCollector_EmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, "", buf.String())
}
