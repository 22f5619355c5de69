package sim

import (
	"strconv"
	"sync/atomic"
)

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

var idGenerator IDGenerator = &sequentialIDGenerator{}

// GetIDGenerator returns the generator of event and progress bar IDs. IDs are
// sequential so that two runs with the same seed produce the same IDs.
func GetIDGenerator() IDGenerator {
	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}
