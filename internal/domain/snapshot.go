package domain

import "time"

// SnapshotEntry é uma linha agregada persistida em um lote de snapshot
type SnapshotEntry struct {
	ID        int       `json:"id"`
	BatchID   string    `json:"batch_id"`
	CreatedAt time.Time `json:"created_at"`
	AggregateRow
}

// SnapshotBatch resume um lote de snapshot persistido
type SnapshotBatch struct {
	BatchID   string    `json:"batch_id"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}
