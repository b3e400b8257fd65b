package brew

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// Purpose separates random draws made for the same machine on the same tick.
type Purpose uint8

const (
	PurposeRecipe Purpose = iota + 1
	PurposeTemperature
)

// RandomSource draws from process-wide generator, results are not reproducible.
type RandomSource struct{}

func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

func (s *RandomSource) IntN(_ int, _ uint64, _ Purpose, n int) int {
	return rand.IntN(n)
}

// HashedSource derives every draw from (seed, machine, tick, purpose), so a run can be replayed.
type HashedSource struct {
	seed uint64
}

func NewHashedSource(seed uint64) *HashedSource {
	return &HashedSource{
		seed: seed,
	}
}

func (s *HashedSource) IntN(machineID int, tick uint64, purpose Purpose, n int) int {
	var buf [25]byte
	binary.BigEndian.PutUint64(buf[0:8], s.seed)
	binary.BigEndian.PutUint64(buf[8:16], uint64(machineID))
	binary.BigEndian.PutUint64(buf[16:24], tick)
	buf[24] = byte(purpose)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return int(h.Sum64() % uint64(n))
}
