package collections

import (
	"testing"

	"cuaderno-ejercicios/internal/platform/fatal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores_LookupLaw(t *testing.T) {
	s := NewScores()

	assert.True(t, s.Get("Blue").IsNone(), "never inserted")

	s.Insert("Blue", 10)
	s.Insert("Yellow", 50)
	v, ok := s.Get("Blue").Get()
	require.True(t, ok)
	assert.Equal(t, uint64(10), v)

	s.Remove("Blue")
	assert.True(t, s.Get("Blue").IsNone(), "removed")
	assert.Equal(t, uint64(0), s.GetOr("Blue", 0))
	assert.Equal(t, uint64(50), s.GetOr("Yellow", 0))
}

func TestScores_InsertOverwrites(t *testing.T) {
	s := NewScores()
	s.Insert("Blue", 10)
	s.Insert("Blue", 25)

	assert.Equal(t, uint64(25), s.GetOr("Blue", 0))
	assert.Equal(t, 1, s.Len())
}

func TestScores_InsertIfAbsentNeverOverwrites(t *testing.T) {
	s := NewScores()
	s.Insert("Blue", 25)

	assert.Equal(t, uint64(50), s.InsertIfAbsent("Yellow", 50))
	assert.Equal(t, uint64(25), s.InsertIfAbsent("Blue", 50))
	assert.Equal(t, map[string]uint64{"Blue": 25, "Yellow": 50}, s.Snapshot())
	assert.Equal(t, []string{"Blue", "Yellow"}, s.Keys())
}

func TestScores_SnapshotIsACopy(t *testing.T) {
	s := NewScores()
	s.Insert("Blue", 1)

	snap := s.Snapshot()
	snap["Blue"] = 99

	assert.Equal(t, uint64(1), s.GetOr("Blue", 0))
}

func TestWordCount(t *testing.T) {
	got := WordCount("hello world wonderful world", 0)
	assert.Equal(t, map[string]uint64{"hello": 1, "world": 2, "wonderful": 1}, got)

	got = WordCount("hello hello", 15)
	assert.Equal(t, map[string]uint64{"hello": 17}, got)
}

func TestVec_GetAndAt(t *testing.T) {
	v := VecOf(1, 2, 3)

	assert.Equal(t, 3, v.Get(2).UnwrapOr(0))
	assert.True(t, v.Get(3).IsNone())
	assert.True(t, v.Get(-1).IsNone())
	assert.Equal(t, 3, v.At(2))

	err := fatal.Catch(func() error {
		_ = v.At(10)
		return nil
	})
	assert.True(t, fatal.Is(err))
}

func TestVec_PushEachApply(t *testing.T) {
	v := VecOf[int]()
	v.Push(12)
	v.Push(23)
	v.Push(1)

	v.Apply(func(x *int) { *x *= 2 })

	var seen []int
	v.Each(func(n, x int) { seen = append(seen, n*1000+x) })
	assert.Equal(t, []int{1024, 2046, 3002}, seen)
	assert.Equal(t, []int{24, 46, 2}, v.Slice())
}

func TestGrid(t *testing.T) {
	g := Grid(3)
	require.Len(t, g, 3)
	for _, row := range g {
		assert.Equal(t, []uint{0, 0, 0}, row)
	}
	g[0][0] = 1
	assert.Equal(t, uint(0), g[1][0], "rows do not alias")

	assert.Empty(t, Grid(0))
}

func TestDescribeCell(t *testing.T) {
	cells := []struct {
		name string
		want string
		cell func() (string, error)
	}{
		{"int", "El entero almacenado es: 3", func() (string, error) { return DescribeCell(Int(3)) }},
		{"float", "El flotante almacenado es: 3.1416", func() (string, error) { return DescribeCell(Float(3.1416)) }},
		{"text", "El texto almacenado es: Hola", func() (string, error) { return DescribeCell(Text("Hola")) }},
	}

	for _, c := range cells {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.cell()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
