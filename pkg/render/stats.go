package render

import (
	"time"

	"github.com/google/uuid"
)

// Stats is a progress/telemetry record for a render pass. Driver.Run does
// not build one: it reports each pass through its onPass callback and a log
// line carrying the job id from NewJobID.
type Stats struct {
	JobID       uuid.UUID
	Pass        int
	TotalPasses int
	Elapsed     time.Duration
	RaysTraced  uint64
}

// NewJobID allocates a fresh job id for a render invocation.
func NewJobID() uuid.UUID { return uuid.New() }
