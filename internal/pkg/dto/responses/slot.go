package responses

// DaySlots is one day of the 7-day advisory window: the day's date key
// and the open time labels for it, chronological, possibly empty.
type DaySlots struct {
	DateKey string   `json:"slotDate"`
	Times   []string `json:"times"`
}

type OpenSlots struct {
	Days []DaySlots `json:"days"`
}
