package domain

// Store acknowledgements returned to clients in place of the written
// document, mirroring the driver results the API exposes.

type InsertAck struct {
	InsertedID any `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}
