package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestExerciseSchemeDisplayString(t *testing.T) {
	tests := []struct {
		name   string
		scheme ExerciseScheme
		want   string
	}{
		{
			name: "sets, rep range and effort",
			scheme: ExerciseScheme{
				Sets: intPtr(3), RepRangeMin: intPtr(8), RepRangeMax: intPtr(12),
				EffortType: EffortRPE, EffortValue: floatPtr(8),
			},
			want: "3x8-12 @ RPE 8",
		},
		{
			name: "sets, single reps and weight",
			scheme: ExerciseScheme{
				Sets: intPtr(4), Reps: intPtr(10), WeightKG: floatPtr(80),
			},
			want: "4x10 @ 80kg",
		},
		{
			name: "fractional values render without trailing zeros",
			scheme: ExerciseScheme{
				Sets: intPtr(5), Reps: intPtr(5),
				EffortType: EffortRIR, EffortValue: floatPtr(1.5),
			},
			want: "5x5 @ RIR 1.5",
		},
		{
			name:   "collapsed rep range",
			scheme: ExerciseScheme{Sets: intPtr(3), RepRangeMin: intPtr(10), RepRangeMax: intPtr(10)},
			want:   "3x10",
		},
		{
			name:   "reps only",
			scheme: ExerciseScheme{Reps: intPtr(12)},
			want:   "12",
		},
		{
			name:   "sets only",
			scheme: ExerciseScheme{Sets: intPtr(3)},
			want:   "3x",
		},
		{
			name:   "effort only",
			scheme: ExerciseScheme{EffortType: EffortRPE, EffortValue: floatPtr(9)},
			want:   " @ RPE 9",
		},
		{
			name:   "effort type without value falls back to weight",
			scheme: ExerciseScheme{Sets: intPtr(3), Reps: intPtr(8), EffortType: EffortRPE, WeightKG: floatPtr(60)},
			want:   "3x8 @ 60kg",
		},
		{
			name:   "empty scheme",
			scheme: ExerciseScheme{},
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scheme.DisplayString())
		})
	}
}

func TestParseEffortType(t *testing.T) {
	assert.Equal(t, EffortRPE, ParseEffortType("rpe"))
	assert.Equal(t, EffortRIR, ParseEffortType("RIR"))
	assert.Equal(t, EffortNone, ParseEffortType(""))
	assert.Equal(t, EffortNone, ParseEffortType("PERCENT_1RM"))
}

func TestEffortTypeDecodeNull(t *testing.T) {
	var s ExerciseScheme
	require.NoError(t, json.Unmarshal([]byte(`{"exerciseId":"ex1","effortType":null}`), &s))
	assert.Equal(t, EffortNone, s.EffortType)
}

func TestSmartDefaultsFor(t *testing.T) {
	prefs := TrainerExercisePreferences{
		MostUsedSchemes: []ExerciseScheme{
			{ExerciseID: "ex1", Sets: intPtr(5), Reps: intPtr(5), WeightKG: floatPtr(100)},
			{ExerciseID: "ex2", RepRangeMin: intPtr(8), RepRangeMax: intPtr(12)},
		},
	}

	d := prefs.SmartDefaultsFor("ex1")
	require.NotNil(t, d)
	assert.Equal(t, 5, d.Sets)
	assert.Equal(t, 5, d.Reps)
	assert.Equal(t, 60, d.RestSeconds)
	require.NotNil(t, d.WeightKG)
	assert.Equal(t, 100.0, *d.WeightKG)
	assert.Equal(t, DefaultsSourceMostUsed, d.Source)

	// Missing scheme fields fall back to the default numbers; a rep range
	// contributes its upper bound.
	d = prefs.SmartDefaultsFor("ex2")
	require.NotNil(t, d)
	assert.Equal(t, 3, d.Sets)
	assert.Equal(t, 12, d.Reps)

	// No scheme, no defaults; the caller applies FallbackDefaults itself.
	assert.Nil(t, prefs.SmartDefaultsFor("ex404"))
}

func TestFallbackDefaults(t *testing.T) {
	assert.Equal(t, 3, FallbackDefaults.Sets)
	assert.Equal(t, 12, FallbackDefaults.Reps)
	assert.Equal(t, 60, FallbackDefaults.RestSeconds)
	assert.Equal(t, "DEFAULT", FallbackDefaults.Source)
}

func TestIsFavorite(t *testing.T) {
	prefs := TrainerExercisePreferences{FavoriteExerciseIDs: []string{"ex1", "ex2"}}
	assert.True(t, prefs.IsFavorite("ex2"))
	assert.False(t, prefs.IsFavorite("ex9"))
}

func TestTrainerExercisePreferencesDecode(t *testing.T) {
	payload := `{
		"trainerId":"t1",
		"defaults":{"sets":4,"reps":8,"restSeconds":90,"source":"DEFAULT"},
		"recentExercises":[{"exerciseId":"ex1","useCount":7,"score":0.93}],
		"favoriteExerciseIds":["ex1"],
		"mostUsedSchemes":[{"exerciseId":"ex1","sets":5,"reps":5,"effortType":"RPE","effortValue":8}]
	}`
	var prefs TrainerExercisePreferences
	require.NoError(t, json.Unmarshal([]byte(payload), &prefs))
	require.NotNil(t, prefs.Defaults)
	assert.Equal(t, 90, prefs.Defaults.RestSeconds)
	require.Len(t, prefs.RecentExercises, 1)
	require.NotNil(t, prefs.RecentExercises[0].Score)
	assert.InDelta(t, 0.93, *prefs.RecentExercises[0].Score, 0.0001)
	require.Len(t, prefs.MostUsedSchemes, 1)
	assert.Equal(t, "5x5 @ RPE 8", prefs.MostUsedSchemes[0].DisplayString())
}
