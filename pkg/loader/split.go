package loader

import "math/rand"

// Shuffle permutes xs in place. Every permutation is equally likely.
func Shuffle[T any](xs []T, rng *rand.Rand) {
	rng.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}

// TrainCount returns floor(trainRatio * n).
func TrainCount(n int, trainRatio float64) int {
	return int(float64(n) * trainRatio)
}

// TrainValidSplit shuffles xs in place and cuts it at TrainCount(len(xs), trainRatio).
// The returned slices share xs's backing array.
func TrainValidSplit[T any](xs []T, trainRatio float64, rng *rand.Rand) (train, valid []T) {
	Shuffle(xs, rng)
	nTrain := TrainCount(len(xs), trainRatio)
	return xs[:nTrain], xs[nTrain:]
}
