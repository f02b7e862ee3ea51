package metrics

import "time"

// RecorderMetrics observes the session store.
type RecorderMetrics interface {
	// RecordAppend observes one stored PDU.
	RecordAppend(bytes int, took time.Duration)

	// RecordReplayed counts PDUs emitted by a replay.
	RecordReplayed(count int)

	// SetActiveSessions reports the number of open recording sessions.
	SetActiveSessions(n int)
}

// ArchiveMetrics observes session exports to object storage.
type ArchiveMetrics interface {
	// RecordExport observes one export. status is "success" or "error".
	RecordExport(status string, bytes int64, took time.Duration)
}
