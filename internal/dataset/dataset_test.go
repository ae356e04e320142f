package dataset_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

func TestNewResolvesKinds(t *testing.T) {
	ds, err := dataset.New("kinds",
		series.New([]int{1, 2}, series.Int, "i"),
		series.New([]float64{1.5, 2.5}, series.Float, "f"),
		series.New([]string{"a", "b"}, series.String, "s"),
		series.New([]bool{true, false}, series.Bool, "b"),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Rows())
	assert.Equal(t, 4, ds.Cols())
	assert.Equal(t, []string{"i", "f", "s", "b"}, ds.Names())

	kinds := []dataset.Kind{dataset.Numeric, dataset.Numeric, dataset.Categorical, dataset.Other}
	types := []string{"int", "float", "string", "bool"}
	for i, c := range ds.Columns() {
		assert.Equal(t, kinds[i], c.Kind, c.Name)
		assert.Equal(t, types[i], c.Type, c.Name)
	}
	assert.Len(t, ds.ColumnsOfKind(dataset.Numeric), 2)
	assert.Len(t, ds.ColumnsOfKind(dataset.Categorical), 1)
}

func TestNullMasks(t *testing.T) {
	ds, err := dataset.New("nulls",
		series.New([]string{"1", "NaN", "3"}, series.Float, "f"),
		series.New([]string{"x", "NaN", "NaN"}, series.String, "s"),
	)
	require.NoError(t, err)

	f, ok := ds.ColumnByName("f")
	require.True(t, ok)
	assert.Equal(t, 1, f.NullCount())
	assert.True(t, f.IsNull(1))
	assert.True(t, math.IsNaN(f.Float(1)))
	assert.Equal(t, []float64{1, 3}, f.Floats())

	s, ok := ds.ColumnByName("s")
	require.True(t, ok)
	assert.Equal(t, 2, s.NullCount())
	assert.Equal(t, []string{"x"}, s.Strings())
	assert.Nil(t, s.Floats())

	vals, present := ds.Row(1)
	assert.Equal(t, []bool{false, false}, present)
	assert.Equal(t, []string{"", ""}, vals)
}

func TestMemoryBytes(t *testing.T) {
	ds, err := dataset.New("mem",
		series.New([]float64{1, 2, 3}, series.Float, "f"),
		series.New([]bool{true, false, true}, series.Bool, "b"),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(128+3*8+3*1), ds.MemoryBytes())
}

func TestFromDataFrameRejectsBrokenFrame(t *testing.T) {
	df := dataframe.New(
		series.New([]int{1, 2}, series.Int, "a"),
		series.New([]int{1}, series.Int, "b"),
	)
	_, err := dataset.FromDataFrame("broken", df)
	assert.Error(t, err)
}

func TestNewWithoutColumns(t *testing.T) {
	ds, err := dataset.New("empty")
	require.NoError(t, err)
	assert.Zero(t, ds.Rows())
	assert.Zero(t, ds.Cols())
}

func TestKindText(t *testing.T) {
	b, err := json.Marshal(struct {
		K dataset.Kind `json:"k"`
	}{dataset.Categorical})
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"categorical"}`, string(b))

	var k dataset.Kind
	require.NoError(t, k.UnmarshalText([]byte("numeric")))
	assert.Equal(t, dataset.Numeric, k)
	assert.Error(t, k.UnmarshalText([]byte("datetime")))
}

func TestRowUsesExactFloatText(t *testing.T) {
	ds, err := dataset.New("precise",
		series.New([]float64{0.1234567, 0.1234568}, series.Float, "x"),
		series.New([]int{7, 8}, series.Int, "n"),
		series.New([]string{"a", "NaN"}, series.String, "s"),
	)
	require.NoError(t, err)

	v0, ok0 := ds.Row(0)
	v1, ok1 := ds.Row(1)
	assert.Equal(t, []string{"0.1234567", "7", "a"}, v0)
	assert.Equal(t, []bool{true, true, true}, ok0)
	assert.Equal(t, []string{"0.1234568", "8", ""}, v1)
	assert.Equal(t, []bool{true, true, false}, ok1)
}
