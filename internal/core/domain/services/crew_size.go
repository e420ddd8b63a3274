package services

// Crew sizing thresholds. Two independent rules coexist: the quote engine
// sizes crews by item value, while capacity reporting sizes them by loading
// volume. The rules are deliberately not reconciled; they serve different
// consumers and may disagree for the same booking.
const (
	crewPriceThresholdThree = 1_000_000
	crewPriceThresholdTwo   = 500_000

	crewVolumeThresholdThree = 6.0
	crewVolumeThresholdTwo   = 1.5
)

// CrewSizeByPrice maps an items total (KRW) to a crew size. Thresholds are
// evaluated from highest to lowest; the first match wins, which makes the
// result monotonic non-decreasing in the total.
func CrewSizeByPrice(itemsTotal int) int {
	switch {
	case itemsTotal >= crewPriceThresholdThree:
		return 3
	case itemsTotal >= crewPriceThresholdTwo:
		return 2
	default:
		return 1
	}
}

// CrewSizeByVolume maps a total loading cube to a crew size. Used by
// capacity and driver-load reporting, not by the quote engine.
func CrewSizeByVolume(totalVolume float64) int {
	switch {
	case totalVolume >= crewVolumeThresholdThree:
		return 3
	case totalVolume >= crewVolumeThresholdTwo:
		return 2
	default:
		return 1
	}
}
