package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the tag, center and heading of every live object,
// quantized to thousandths of a cell. Two runs fed the same inputs produce
// the same fingerprint; object IDs are random and not included.
func (w *World) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(math.Round(v*1000)))) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}

	for _, o := range w.Objects() {
		_, _ = d.WriteString(o.Tag)
		c := o.Center()
		put(c.X)
		put(c.Y)
		put(o.Direction.X)
		put(o.Direction.Y)
		put(o.Speed)
	}
	return d.Sum64()
}
