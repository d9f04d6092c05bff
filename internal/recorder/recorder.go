package recorder

import "MoveRadar/internal/model"

// Recorder persists scan history for later analysis. The scan path never
// reads it back; it is a write-only audit log.
type Recorder interface {
	RecordScan(result *model.ScanResult) error
	Close() error
}
