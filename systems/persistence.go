package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedRecord is the run record stored on disk.
type SavedRecord struct {
	BestDistance float64 `json:"bestDistance"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for record storage. Failure
// is non-fatal: the game runs without a persisted best.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gridrunner",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the saved run record; nil when none exists.
func LoadRecord() (*SavedRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return nil, err
	}
	return &record, nil
}

// SaveRecord writes the run record to disk.
func SaveRecord(r *SavedRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
		return err
	}
	return nil
}

// SaveBestDistance persists distance when it beats the stored best.
func SaveBestDistance(distance float64) {
	record, _ := LoadRecord()
	if record != nil && record.BestDistance >= distance {
		return
	}
	_ = SaveRecord(&SavedRecord{BestDistance: distance})
}
