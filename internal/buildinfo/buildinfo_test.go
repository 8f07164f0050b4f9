package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	origV, origD, origC := Version, Date, Commit
	t.Cleanup(func() { Version, Date, Commit = origV, origD, origC })

	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())

	Version, Date, Commit = "v0.3.1", "2026-10-16", "abc1234"
	buf.Reset()
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: v0.3.1\nBuild date: 2026-10-16\nBuild commit: abc1234\n", buf.String())
}
