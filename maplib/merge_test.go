package maplib

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAddMapsDisjoint(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"c": 3}
	for _, target := range []AddTarget{AddValues, AddKeysAndValues} {
		require.Equal(t, 0, len(AddMaps(a, b, target, true)))
		got := AddMaps(a, b, target, false)
		if diff := cmp.Diff(map[string]int{"a": 1, "b": 2, "c": 3}, got); diff != "" {
			t.Fatalf("%v: union mismatch (-want +got):\n%s", target, diff)
		}
	}
}

func TestAddMapsValues(t *testing.T) {
	a := map[string]int{"shared": 1, "onlyA": 2}
	b := map[string]int{"shared": 10, "onlyB": 20}
	got := AddMaps(a, b, AddValues, false)
	require.Equal(t, map[string]int{"shared": 11, "onlyA": 2, "onlyB": 20}, got)
	got = AddMaps(a, b, AddValues, true)
	require.Equal(t, map[string]int{"shared": 11}, got)
	// inputs untouched
	require.Equal(t, map[string]int{"shared": 1, "onlyA": 2}, a)
	require.Equal(t, map[string]int{"shared": 10, "onlyB": 20}, b)
}

func TestAddMapsKeysAndValues(t *testing.T) {
	a := map[string]string{"k": "x", "a": "1"}
	b := map[string]string{"k": "y", "b": "2"}
	got := AddMaps(a, b, AddKeysAndValues, false)
	require.Equal(t, map[string]string{"kk": "xy", "a": "1", "b": "2"}, got)
	got = AddMaps(a, b, AddKeysAndValues, true)
	require.Equal(t, map[string]string{"kk": "xy"}, got)

	nums := AddMaps(map[int]float64{3: 1.5}, map[int]float64{3: 2}, AddKeysAndValues, true)
	require.Equal(t, map[int]float64{6: 3.5}, nums)
}

func TestAddMapsCombinedEntryWins(t *testing.T) {
	a := map[string]int{"a": 1, "aa": 100}
	b := map[string]int{"a": 10}
	for i := 0; i < 20; i++ {
		got := AddMaps(a, b, AddKeysAndValues, false)
		require.Equal(t, map[string]int{"aa": 11}, got)
	}

	// the colliding key only exists in b
	a = map[string]int{"k": 1}
	b = map[string]int{"k": 2, "kk": 5}
	for i := 0; i < 20; i++ {
		got := AddMaps(a, b, AddKeysAndValues, false)
		require.Equal(t, map[string]int{"kk": 3}, got)
	}
}

func TestAddValuesMapsStructKeys(t *testing.T) {
	type point struct{ X, Y int }
	a := map[point]int{{1, 2}: 5, {0, 0}: 1}
	b := map[point]int{{1, 2}: 7}
	got := AddValuesMaps(a, b, false)
	require.Equal(t, map[point]int{{1, 2}: 12, {0, 0}: 1}, got)
}

func TestParseAddTarget(t *testing.T) {
	for _, target := range []AddTarget{AddValues, AddKeysAndValues} {
		parsed, err := ParseAddTarget(target.String())
		require.Nil(t, err)
		require.Equal(t, target, parsed)
	}
	_, err := ParseAddTarget("keys")
	require.True(t, errors.Is(err, ErrUnknownAddTarget))
}
