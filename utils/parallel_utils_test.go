package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	// buckets tile [0, MaxIndex) with a maximum imbalance of one item
	for _, tc := range [][2]int{{1, 10}, {3, 10}, {4, 1000}, {7, 13}, {5, 5}} {
		NP, maxIndex := tc[0], tc[1]
		pm := NewPartitionMap(NP, maxIndex)
		last := 0
		for np := 0; np < NP; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			require.Equal(t, last, kMin)
			require.Equal(t, kMax-kMin, pm.GetBucketDimension(np))
			assert.True(t, kMax-kMin >= maxIndex/NP)
			assert.True(t, kMax-kMin <= maxIndex/NP+1)
			last = kMax
		}
		assert.Equal(t, maxIndex, last)
	}
}
