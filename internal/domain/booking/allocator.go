package booking

// Court allocation policy. Courts are numbered 1..courtCount per
// (facility, sport); the occupied set comes from active bookings whose
// windows overlap the requested one.

// LowestFreeCourt returns the smallest court number in 1..courtCount not in
// occupied, and false when every court is taken. Ties break by number, never
// by booking recency, so repeated calls against the same ledger state are
// deterministic.
func LowestFreeCourt(courtCount int, occupied []int) (int, bool) {
	if courtCount < 1 {
		return 0, false
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, n := range occupied {
		taken[n] = struct{}{}
	}

	for court := 1; court <= courtCount; court++ {
		if _, ok := taken[court]; !ok {
			return court, true
		}
	}
	return 0, false
}

// AvailableCount returns how many courts remain free given the number of
// active bookings overlapping the window. Each active booking occupies
// exactly one court, so a plain count suffices on the read side.
func AvailableCount(courtCount, overlapping int) int {
	free := courtCount - overlapping
	if free < 0 {
		return 0
	}
	return free
}
