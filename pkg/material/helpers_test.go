package material

import (
	"math/rand"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

// scriptedSource replays fixed Int63 values so tests can pin down random draws.
// Float64 returns Int63 / 2^63, so 1<<62 yields 0.5.
type scriptedSource struct {
	values []int64
	next   int
}

func (s *scriptedSource) Int63() int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *scriptedSource) Seed(int64) {}

// scripted builds a generator whose Float64 draws cycle through the given values
func scripted(floats ...float64) *rand.Rand {
	values := make([]int64, len(floats))
	for i, f := range floats {
		values[i] = int64(f * (1 << 63))
	}
	return rand.New(&scriptedSource{values: values})
}

func hitAt(point, normal core.Vec3, frontFace bool) core.HitRecord {
	return core.HitRecord{
		Point:     point,
		Normal:    normal,
		T:         1.0,
		FrontFace: frontFace,
	}
}
