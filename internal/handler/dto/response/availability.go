package response

// AvailabilityResponse reports how many courts remain free for the window.
type AvailabilityResponse struct {
	AvailableCourts int  `json:"available_courts"`
	Available       bool `json:"available"`
}

// CourtAllocationResponse carries the advisory lowest-numbered free court.
type CourtAllocationResponse struct {
	CourtNumber int `json:"court_number"`
}
