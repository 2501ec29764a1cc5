package hnsw

import (
	"fmt"
	"math/rand"
	"testing"
)

func randomVectors(n, dim int, seed int64) []Vector {
	rng := rand.New(rand.NewSource(seed))
	vectors := make([]Vector, n)
	for i := range vectors {
		v := make(Vector, dim)
		for j := range v {
			v[j] = float32(rng.NormFloat64())
		}
		vectors[i] = v
	}
	return vectors
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vectors := randomVectors(n, 32, 1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				idx, err := New(32, Config{
					M:              16,
					EfConstruction: 64,
					Distance:       EuclideanDistance,
					Sampler:        NewSampler(rand.New(rand.NewSource(int64(i)))),
				})
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				for _, v := range vectors {
					if _, err := idx.Insert(v); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vectors := randomVectors(n, 32, 1)
			idx, err := New(32, Config{
				M:              16,
				EfConstruction: 64,
				Distance:       EuclideanDistance,
				Sampler:        NewSampler(rand.New(rand.NewSource(1))),
			})
			if err != nil {
				b.Fatal(err)
			}
			if _, err := idx.InsertBatch(vectors); err != nil {
				b.Fatal(err)
			}

			queries := randomVectors(100, 32, 2)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := idx.Search(queries[i%len(queries)], 10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
