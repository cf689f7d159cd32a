package concurrent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsJobOrder(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{3, 1, 2}},
		{name: "more workers than jobs", numWorkers: 8, jobs: []int{5, 4}},
		{name: "many jobs", numWorkers: 4, jobs: makeRange(200)},
		{name: "no jobs", numWorkers: 4, jobs: nil},
		{name: "zero workers", numWorkers: 0, jobs: []int{7}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.numWorkers, tt.jobs, func(job int) int {
				return job * job
			})

			assert.Len(t, got, len(tt.jobs))
			for i, job := range tt.jobs {
				assert.Equal(t, job*job, got[i])
			}
		})
	}
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestMapBuffersResultsWhileAJobBlocks(t *testing.T) {
	jobs := makeRange(64)

	var others sync.WaitGroup
	others.Add(len(jobs) - 1)

	// job 0 holds its worker until every other job has produced a result
	got := Map(4, jobs, func(job int) int {
		if job == 0 {
			others.Wait()
		} else {
			others.Done()
		}
		return job + 1
	})

	require.Len(t, got, len(jobs))
	for i, job := range jobs {
		assert.Equal(t, job+1, got[i])
	}
}
