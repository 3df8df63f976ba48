package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCaseInsensitive(t *testing.T) {
	s, err := Lookup("250ub25.7", 1)
	require.NoError(t, err)
	assert.Equal(t, "250UB25.7", s.Designation)
	assert.Equal(t, Steel, s.Material)
	assert.Equal(t, 1, s.Members)
}

func TestLookupUnknownDesignation(t *testing.T) {
	_, err := Lookup("999UB0.0", 1)
	assert.Error(t, err)
}

func TestBuiltUpScaling(t *testing.T) {
	single, err := Lookup("240x45 MGP10", 1)
	require.NoError(t, err)
	triple, err := Lookup("240x45 MGP10", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, triple.Members)
	assert.InEpsilon(t, 3*single.MassPerMetre, triple.MassPerMetre, 1e-12)
	assert.InEpsilon(t, 3*single.Ix, triple.Ix, 1e-12)
	assert.InEpsilon(t, 3*single.Zx, triple.Zx, 1e-12)
	assert.InEpsilon(t, 3*single.Width, triple.Width, 1e-12)
	assert.Equal(t, single.Depth, triple.Depth)
}

func TestScaledZeroOrNegativeMembers(t *testing.T) {
	s, err := Lookup("150UB14.0", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Members)
}

func TestTimberSectionProperties(t *testing.T) {
	s, err := Lookup("190x45 MGP10", 1)
	require.NoError(t, err)

	assert.InEpsilon(t, 45*190.0*190*190/12, s.Ix, 1e-12)
	assert.InEpsilon(t, 45*190.0*190/6, s.Zx, 1e-12)
	assert.InEpsilon(t, 45*190*1e-6*DensityTimber, s.MassPerMetre, 1e-12)
}

func TestSectionsFilter(t *testing.T) {
	all := Sections("")
	steel := Sections(Steel)
	timber := Sections(Timber)
	lvl := Sections(LVL)

	assert.NotEmpty(t, steel)
	assert.NotEmpty(t, timber)
	assert.NotEmpty(t, lvl)
	assert.Len(t, all, len(steel)+len(timber))
	for _, s := range steel {
		assert.Equal(t, Steel, s.Material)
	}
	for _, s := range timber {
		assert.True(t, s.Material.IsTimber())
	}
}

func TestDensities(t *testing.T) {
	assert.Equal(t, DensitySteel, Density(Steel))
	assert.Equal(t, DensityTimber, Density(Timber))
	assert.Equal(t, DensityTimber, Density(LVL))
	assert.Equal(t, DensityConcrete, Density(Concrete))
	assert.Equal(t, DensityDefault, Density("unobtainium"))
}
