package models

import (
	"encoding/json"
	"time"
)

// UpstreamMessage is one statistics-backend response to turn into a view.
// Key is the date (dashboard), range (upcoming), match id (preview) or team id (team).
type UpstreamMessage struct {
	Kind    string          `json:"kind"`
	Key     string          `json:"key"`
	Payload json.RawMessage `json:"payload"`
}

// UpstreamBatch is the Kafka envelope published by the statistics backend
type UpstreamBatch struct {
	BatchID   string            `json:"batch_id"`
	Timestamp time.Time         `json:"timestamp"`
	Messages  []UpstreamMessage `json:"messages"`
}

// IngestResult summarizes the views built from one batch
type IngestResult struct {
	Built  int
	Failed int
}
