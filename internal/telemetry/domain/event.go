// Package domain defines the alert event emitted when an ingestion flags a record.
package domain

import "time"

// AlertEvent describes one flagged stress record. It is emitted best-effort
// after the record is persisted; consumers (Kafka worker, OTel logs) must
// not be load-bearing for the ingestion result.
type AlertEvent struct {
	RecordID    string    `json:"recordId"`
	UserID      string    `json:"userId"`
	StressScore float64   `json:"stressScore"`
	Threshold   float64   `json:"threshold"`
	CreatedAt   time.Time `json:"createdAt"`
}
