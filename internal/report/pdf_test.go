package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/gobeam/internal/capacity"
	"github.com/structcalc/gobeam/internal/check"
	"github.com/structcalc/gobeam/internal/engine"
)

func TestWriteProducesPDF(t *testing.T) {
	res := &engine.Result{
		MaxMoment:           18.4,
		MaxShear:            12.1,
		MomentCase:          "1.2G + 1.5Q",
		ShearCase:           "1.2G + 1.5Q",
		InitialDeflection:   2.1,
		ShortTermDeflection: 3.0,
		LongTermDeflection:  6.3,
		EffectiveJ2:         2.0,
	}
	cap := capacity.Capacity{PhiM: 23.5, PhiV: 41.0, Notes: []string{"characteristic bending strength from grade table"}}
	rep := check.Evaluate(res, cap, 3.6, check.DefaultLimits)

	path := filepath.Join(t.TempDir(), "check.pdf")
	job := Job{Title: "Joist B2", Span: 3.6, Section: "240x45 LVL13", Members: 2, Ws: 0.7, Wl: 0.4, J2: 2.0}
	require.NoError(t, Write(path, job, res, cap, rep))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}
