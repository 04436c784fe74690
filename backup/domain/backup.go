package domain

import "time"

// RawDoc is one document dumped as stored, id plus fields, so an export can
// be restored without knowing the schema version it was written under.
type RawDoc struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// Export is a full snapshot of one user's data set.
type Export struct {
	ExportID    string              `json:"exportId"`
	AppID       string              `json:"appId"`
	UserID      string              `json:"userId"`
	CreatedAt   time.Time           `json:"createdAt"`
	Collections map[string][]RawDoc `json:"collections"`
}
