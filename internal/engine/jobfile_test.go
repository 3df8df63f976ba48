package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFileInputDefaults(t *testing.T) {
	job := JobFile{
		Span:    3.6,
		Section: "240x45 LVL13",
		Members: 2,
		Usage:   "residential-floor",
	}
	in, err := job.Input()
	require.NoError(t, err)

	assert.Equal(t, 0.7, in.Ws)
	assert.Equal(t, 0.4, in.Wl)
	assert.Equal(t, 2.0, in.J2)
	require.NotNil(t, in.Section)
	assert.Equal(t, 2, in.Section.Members)
}

func TestJobFileExplicitFactorsWin(t *testing.T) {
	job := JobFile{Span: 4, Usage: "storage", Ws: 0.9, Wl: 0.5, J2: 3}
	in, err := job.Input()
	require.NoError(t, err)

	assert.Equal(t, 0.9, in.Ws)
	assert.Equal(t, 0.5, in.Wl)
	assert.Equal(t, 3.0, in.J2)
	assert.Nil(t, in.Section)
}

func TestJobFileUnknownUsage(t *testing.T) {
	job := JobFile{Span: 4, Usage: "hangar"}
	_, err := job.Input()
	assert.Error(t, err)
}

func TestLoadJobFileLenientLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.json")
	data := []byte(`{
		"name": "garage beam",
		"span": 4.8,
		"section": "310UB40.4",
		"loads": {
			"udls": {"oops": true},
			"points": [{"location": 2.4, "dead": 12, "live": 9}]
		}
	}`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	job, err := LoadJobFile(path)
	require.NoError(t, err)
	assert.Empty(t, job.Loads.UDLs)
	assert.Len(t, job.Loads.Points, 1)

	in, err := job.Input()
	require.NoError(t, err)
	res := Analyze(in)
	require.NotNil(t, res)
	assert.Greater(t, res.MaxMoment, 0.0)
}

func TestLoadJobFileMissing(t *testing.T) {
	_, err := LoadJobFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
