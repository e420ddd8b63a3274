// Package services provides domain services that operate across the booking
// and catalog aggregates.
//
// The package includes:
//   - QuoteCalculator: the deterministic pricing engine turning an item list
//     into a price range, crew size and loading volume
//   - CrewSizeByPrice / CrewSizeByVolume: the two independent crew sizing
//     rules (quote-time labor pricing vs. dispatch-time capacity planning)
//
// Domain services hold logic that spans aggregates and reference data and
// does not naturally belong to a single aggregate root.
package services
