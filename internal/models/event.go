package models

// CarEvent is published whenever a listing stage is stored.
type CarEvent struct {
	EventID    string   `json:"event_id"`
	CarID      int64    `json:"car_id"`
	HostID     int64    `json:"host_id"`
	Stage      CarStage `json:"stage"`
	State      CarState `json:"state"`
	IsComplete bool     `json:"is_complete"`
	Timestamp  int64    `json:"timestamp"`
}
