// SPDX-License-Identifier: MIT

package accuracy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapaccuracy/accuracy"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	r := mustReport(t, refPixels, refMatrix, 1)
	assert.Equal(t, accuracy.DefaultAreaUnit, r.AreaUnit)
	assert.Nil(t, r.ClassNames)
	assert.Equal(t, "2", r.ClassName(2), "unnamed classes fall back to their index")
}

func TestOptions_LastWins(t *testing.T) {
	t.Parallel()
	r := mustReport(t, refPixels, refMatrix, 1,
		accuracy.WithAreaUnit("km2"),
		accuracy.WithAreaUnit("ha"),
		nil,
		accuracy.WithClassNames(refNames...),
	)
	assert.Equal(t, "ha", r.AreaUnit)
	assert.Equal(t, refNames, r.ClassNames)
}

func TestOptions_ClassNamesLength(t *testing.T) {
	t.Parallel()
	_, err := accuracy.ComputeAccuracyReport(refPixels, refMatrix, 1, accuracy.WithClassNames("a", "b"))
	require.Error(t, err)
	assert.ErrorIs(t, err, accuracy.ErrDimensionMismatch)
}

func TestOptions_PanicOnBlank(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { accuracy.WithClassNames("a", " ") })
	assert.Panics(t, func() { accuracy.WithAreaUnit("") })
}

func TestOptions_NamesCopied(t *testing.T) {
	t.Parallel()
	names := []string{"a", "b", "c", "d"}
	r := mustReport(t, refPixels, refMatrix, 1, accuracy.WithClassNames(names...))
	names[0] = "changed"
	assert.Equal(t, "a", r.ClassName(0))
}
