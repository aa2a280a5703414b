package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailhq/windward/schema"
)

// TestRenderAnalysisCharts tests the HTML chart page end to end.
func TestRenderAnalysisCharts(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "charts.html")

	err := RenderAnalysisCharts(sampleResult(), tmpFile)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Course over track")
	assert.Contains(t, html, "Track by tack")
	assert.Contains(t, html, "Heading distribution")
	assert.Contains(t, html, "port")
	assert.Contains(t, html, "starboard")
}

// TestRenderAnalysisChartsUnknownWind tests the no-wind rendering path.
func TestRenderAnalysisChartsUnknownWind(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "charts.html")
	result := sampleResult()
	result.Wind = schema.WindEstimate{}
	result.Tacks = nil

	err := RenderAnalysisCharts(result, tmpFile)
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "wind unknown")
}

// TestRenderAnalysisChartsBadPath tests the file creation error path.
func TestRenderAnalysisChartsBadPath(t *testing.T) {
	err := RenderAnalysisCharts(sampleResult(), "/nonexistent/dir/charts.html")
	assert.Error(t, err)
}
