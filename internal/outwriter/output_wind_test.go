package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailhq/windward/schema"
)

// TestWriteWindResult tests all three output forms for the wind estimate.
func TestWriteWindResult(t *testing.T) {
	wind := sampleResult().Wind

	t.Run("text with tacking diagnostics", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "wind.txt")
		cfg := testConfig(schema.TextOut, tmpFile)

		err := WriteWindResult(wind, cfg, time.Millisecond)
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		text := string(content)
		assert.Contains(t, text, "Wind direction: 90.00°")
		assert.Contains(t, text, "Method: tacking_pattern")
		assert.Contains(t, text, "Tacking axis: 90.00°")
		assert.Contains(t, text, "Main heading 1: 45.00°")
		assert.Contains(t, text, "Turns used: 1 of 1 detected")
	})

	t.Run("text unknown wind", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "wind.txt")
		cfg := testConfig(schema.TextOut, tmpFile)

		err := WriteWindResult(schema.WindEstimate{}, cfg, time.Millisecond)
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Wind direction: unknown")
	})

	t.Run("text fallback shows dominant course", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "wind.txt")
		cfg := testConfig(schema.TextOut, tmpFile)

		fallback := schema.WindEstimate{
			Direction: 225,
			Known:     true,
			Method:    schema.FallbackMedianMethod,
			Diagnostics: schema.WindDiagnostics{
				DominantCourse: 45,
			},
		}
		err := WriteWindResult(fallback, cfg, time.Millisecond)
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Dominant course: 45.00°")
	})

	t.Run("csv", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "wind.csv")
		cfg := testConfig(schema.CSVOut, tmpFile)

		err := WriteWindResult(wind, cfg, time.Millisecond)
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "direction,known,method,tacking_axis,used_turns", lines[0])
		assert.Equal(t, "90.00,true,tacking_pattern,90.00,1", lines[1])
	})

	t.Run("json", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "wind.json")
		cfg := testConfig(schema.JSONOut, tmpFile)

		err := WriteWindResult(wind, cfg, time.Millisecond)
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)

		var parsed schema.WindEstimate
		require.NoError(t, json.Unmarshal(content, &parsed))
		assert.InDelta(t, 90, parsed.Direction, 1e-9)
		assert.Equal(t, schema.TackingPatternMethod, parsed.Method)
	})
}
