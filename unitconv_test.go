package unitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/unitconv/registry"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
		delta    float64
	}{
		{1, "kilometer", "meter", 1000, 0},
		{0, "celsius", "fahrenheit", 32, 1e-9},
		{100, "celsius", "kelvin", 373.15, 0},
		{26.2, "miles", "km", 42.1648128, 1e-9},
		{1, "stone", "pound", 14, 1e-9},
		{90, "minutes", "hours", 1.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.delta)
			}
		})
	}

	t.Run("cross dimension fails", func(t *testing.T) {
		_, err := Convert(1, "meter", "kilogram")
		assert.ErrorIs(t, err, registry.ErrIncompatibleDimensions)
	})

	t.Run("unknown unit fails", func(t *testing.T) {
		_, err := Convert(1, "unknownunit", "meter")
		assert.ErrorIs(t, err, registry.ErrUnknownUnit)
	})
}

// Identity holds for every unit the builtin catalog ships.
func TestConvert_IdentityLaw(t *testing.T) {
	for _, dim := range Dimensions() {
		units, err := Units(dim)
		require.NoError(t, err)
		require.NotEmpty(t, units)
		for _, u := range units {
			for _, x := range []float64{-459.67, 0, 1, 12.5, 1e9} {
				got, err := Convert(x, u, u)
				require.NoError(t, err)
				assert.Equal(t, x, got, "identity for %s", u)
			}
		}
	}
}

// Converting there and back lands on the start within float tolerance, for
// every unit pair of every dimension.
func TestConvert_RoundTripLaw(t *testing.T) {
	for _, dim := range Dimensions() {
		units, err := Units(dim)
		require.NoError(t, err)
		for _, a := range units {
			for _, b := range units {
				for _, x := range []float64{-40, 0, 0.25, 1000} {
					there, err := Convert(x, a, b)
					require.NoError(t, err)
					back, err := Convert(there, b, a)
					require.NoError(t, err)
					assert.InDeltaf(t, x, back, 1e-6, "round trip %s -> %s at %v", a, b, x)
				}
			}
		}
	}
}

func TestConvert_Linearity(t *testing.T) {
	one, err := Convert(1, "inch", "centimeter")
	require.NoError(t, err)
	for _, k := range []float64{-2, 0, 3, 100.5} {
		got, err := Convert(k, "inch", "centimeter")
		require.NoError(t, err)
		assert.InDelta(t, k*one, got, 1e-9)
	}
}

func TestDimensions(t *testing.T) {
	dims := Dimensions()
	assert.Equal(t, []registry.Dimension{
		registry.Length, registry.Mass, registry.Time, registry.Temperature,
		registry.Volume, registry.Area, registry.Speed, registry.Data,
	}, dims)
}

func TestUnits(t *testing.T) {
	units, err := Units(registry.Temperature)
	require.NoError(t, err)
	assert.Equal(t, []string{"kelvin", "celsius", "fahrenheit", "rankine"}, units)

	_, err = Units("vibes")
	assert.ErrorIs(t, err, registry.ErrUnknownDimension)
}

func TestResolve(t *testing.T) {
	u, err := Resolve("km/h")
	require.NoError(t, err)
	assert.Equal(t, "kilometer-per-hour", u.Symbol)
	assert.Equal(t, registry.Speed, u.Dimension)
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	r := registry.New()
	require.NoError(t, r.RegisterUnit(registry.Unit{
		Symbol: "smoot", Dimension: registry.Length, Rule: registry.Linear(1.702),
	}))
	require.NoError(t, r.RegisterUnit(registry.Unit{
		Symbol: "meter", Dimension: registry.Length, Rule: registry.Linear(1),
	}))
	SetDefault(r)

	got, err := Convert(1, "smoot", "meter")
	require.NoError(t, err)
	assert.InDelta(t, 1.702, got, 1e-12)

	_, err = Convert(1, "kilometer", "meter")
	assert.ErrorIs(t, err, registry.ErrUnknownUnit)
}
