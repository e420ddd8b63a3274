package services

import (
	"log/slog"
	"math"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/catalog"
)

// estimateRoundingUnit is the currency granularity of the customer-facing
// estimate range. Min rounds down, max rounds up, so rounding can only widen
// the range, never tighten it.
const estimateRoundingUnit = 10_000

// disassemblyProneItems are item names that regularly need on-site
// disassembly. Their subtotal earns an extra margin on the estimate's
// high end.
func disassemblyProneItems() map[string]bool {
	return map[string]bool{
		"장롱":  true,
		"침대":  true,
		"소파":  true,
		"장식장": true,
		"거실장": true,
	}
}

// QuoteItem is one requested line of a quote. Only the identifying fields and
// the quantity are meaningful; any price or volume the client sent alongside
// is dropped before this struct is built.
type QuoteItem struct {
	Category string
	Name     string
	Quantity int
}

// QuoteBreakdownRow is one itemized row of the returned quote.
type QuoteBreakdownRow struct {
	Name      string
	Quantity  int
	UnitPrice int
	Subtotal  int
}

// QuoteInput is the full request for a price calculation.
type QuoteInput struct {
	Area        string
	Items       []QuoteItem
	NeedLadder  bool
	LadderType  string
	LadderHours int
}

// QuoteResult is the complete pricing outcome. Items carries the
// server-priced line items ready to snapshot into a booking.
type QuoteResult struct {
	ItemsTotal       int
	CrewSize         int
	CrewPrice        int
	LadderPrice      int
	TotalPrice       int
	EstimateMin      int
	EstimateMax      int
	TotalLoadingCube float64
	Items            []booking.LineItem
	Breakdown        []QuoteBreakdownRow
}

// QuoteCalculator is the deterministic pricing engine. It re-prices every
// requested item against the catalog and derives crew size, labor price,
// ladder price and the rounded estimate range.
//
// Calculate is total: it never returns an error. Unverifiable input degrades
// to zero-priced components so the booking funnel always receives a number;
// each degradation is logged as an audit anomaly. Schema validation (types,
// ranges, non-empty lists) is the caller's responsibility and happens at the
// request boundary, before this engine runs.
type QuoteCalculator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewQuoteCalculator creates a pricing engine over the given catalog snapshot.
func NewQuoteCalculator(cat *catalog.Catalog, logger *slog.Logger) QuoteCalculator {
	if logger == nil {
		logger = slog.Default()
	}
	return QuoteCalculator{
		catalog: cat,
		logger:  logger.With("component", "quote_calculator"),
	}
}

// Calculate runs the pricing pipeline over the requested items.
func (qc QuoteCalculator) Calculate(input QuoteInput) QuoteResult {
	items := qc.enforceCatalogPrices(input.Items)

	itemsTotal := 0
	totalCube := 0.0
	disassemblySubtotal := 0
	breakdown := make([]QuoteBreakdownRow, 0, len(items))
	prone := disassemblyProneItems()

	for _, item := range items {
		subtotal := item.Subtotal()
		itemsTotal += subtotal
		totalCube += item.LoadingCube()
		if prone[item.Name] {
			disassemblySubtotal += subtotal
		}
		breakdown = append(breakdown, QuoteBreakdownRow{
			Name:      item.DisplayName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	crewSize := CrewSizeByPrice(itemsTotal)

	crewPrice := 0
	minCrewPrice := 0
	area, areaKnown := qc.catalog.LookupArea(input.Area)
	if areaKnown {
		crewPrice = area.PriceForCrew(crewSize)
		minCrewPrice = area.Price1
	} else {
		qc.logger.Warn("unrecognized service area in quote",
			"area", input.Area)
	}

	ladderPrice := qc.ladderPrice(input)

	totalPrice := itemsTotal + crewPrice + ladderPrice

	// The low end always assumes the cheapest staffing outcome (a one-person
	// crew), independent of the computed crew size. Intentional range widening.
	estimateMin := roundDownToUnit(itemsTotal + minCrewPrice + ladderPrice)

	rawMax := float64(itemsTotal)*1.15 +
		float64(disassemblySubtotal)*0.10 +
		float64(crewPrice) +
		float64(ladderPrice)
	estimateMax := roundUpToUnit(rawMax)

	return QuoteResult{
		ItemsTotal:       itemsTotal,
		CrewSize:         crewSize,
		CrewPrice:        crewPrice,
		LadderPrice:      ladderPrice,
		TotalPrice:       totalPrice,
		EstimateMin:      estimateMin,
		EstimateMax:      estimateMax,
		TotalLoadingCube: totalCube,
		Items:            items,
		Breakdown:        breakdown,
	}
}

// enforceCatalogPrices replaces every requested line with its authoritative
// catalog pricing. Items the catalog does not know are kept with zero price
// and volume so they can never inflate a billed total, and are logged for
// audit rather than rejected.
func (qc QuoteCalculator) enforceCatalogPrices(requested []QuoteItem) []booking.LineItem {
	items := make([]booking.LineItem, 0, len(requested))
	for _, req := range requested {
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		if quantity > booking.MaxLineItemQuantity {
			quantity = booking.MaxLineItemQuantity
		}

		entry, ok := qc.catalog.LookupItem(req.Category, req.Name)
		if !ok {
			qc.logger.Warn("unverified catalog item in quote",
				"category", req.Category,
				"name", req.Name,
				"quantity", quantity)
			items = append(items, booking.LineItem{
				Category:    req.Category,
				Name:        req.Name,
				DisplayName: req.Name,
				Quantity:    quantity,
				UnitPrice:   0,
				UnitVolume:  0,
				Verified:    false,
			})
			continue
		}

		items = append(items, booking.LineItem{
			Category:    entry.Category,
			Name:        entry.Name,
			DisplayName: entry.DisplayName,
			Quantity:    quantity,
			UnitPrice:   entry.UnitPrice,
			UnitVolume:  entry.UnitVolume,
			Verified:    true,
		})
	}
	return items
}

func (qc QuoteCalculator) ladderPrice(input QuoteInput) int {
	if !input.NeedLadder {
		return 0
	}

	tier, ok := qc.catalog.LookupLadderTier(input.LadderType)
	if !ok {
		qc.logger.Warn("unrecognized ladder tier in quote",
			"ladderType", input.LadderType)
		return 0
	}
	return tier.PriceForHours(input.LadderHours)
}

func roundDownToUnit(v int) int {
	if v < 0 {
		return 0
	}
	return (v / estimateRoundingUnit) * estimateRoundingUnit
}

func roundUpToUnit(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Ceil(v/estimateRoundingUnit)) * estimateRoundingUnit
}
