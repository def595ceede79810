// internal/training/split.go
package training

import (
	"fmt"
	"math"
	"math/rand"
)

// stratifiedSplit partitions sample indices into train and test sets so that
// every class is proportionally represented in both. Every class needs at
// least 2 samples (one per partition); the caller surfaces violations as a
// configuration error.
func stratifiedSplit(labels []int, classes int, testFraction float64, rng *rand.Rand) (train, test []int, err error) {
	byClass := make([][]int, classes)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	for class, idx := range byClass {
		if len(idx) < 2 {
			return nil, nil, fmt.Errorf("class %d has %d samples, need at least 2 for stratification", class, len(idx))
		}
		rng.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})

		nTest := int(math.Round(testFraction * float64(len(idx))))
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(idx) {
			nTest = len(idx) - 1
		}

		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	return train, test, nil
}
