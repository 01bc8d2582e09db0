package utils

import (
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
)

func TestMap(t *testing.T) {
	assert.DeepEqual(t, Map([]int{1, 2, 3}, strconv.Itoa), []string{"1", "2", "3"})
	assert.Assert(t, Map([]int{}, strconv.Itoa) == nil)
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.DeepEqual(t, Filter([]int{2, 4}, even), []int{2, 4})
	assert.DeepEqual(t, Filter([]int{1, 2, 3, 4}, even), []int{2, 4})
	assert.DeepEqual(t, Filter([]int{1, 3}, even), []int{})
}

func TestFilterMap(t *testing.T) {
	got := FilterMap([]string{"1", "x", "3"}, func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	assert.DeepEqual(t, got, []int{1, 3})
}
