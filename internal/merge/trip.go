package merge

import "wayfare-sync-server/internal/domain"

// Trip combines the local and remote copy of one trip. The resolution choice
// decides only whose scalar fields survive; every identity-keyed collection
// is union-merged with local winning on key collision, so neither choice
// discards list data from either side.
func Trip(local, remote domain.Trip, choice domain.Resolution) domain.Trip {
	merged := local
	if choice == domain.ResolutionRemote {
		merged = remote
	}

	merged.Photos = Lists(local.Photos, remote.Photos)
	merged.Comments = Lists(local.Comments, remote.Comments)
	merged.Hotels = Lists(local.Hotels, remote.Hotels)
	merged.Resources = Lists(local.Resources, remote.Resources)
	merged.Expenses = Lists(local.Expenses, remote.Expenses)
	merged.Itinerary = DayLists(local.Itinerary, remote.Itinerary)
	merged.Flights = mergeFlights(local.Flights, remote.Flights)

	return merged
}

// mergeFlights merges the date-keyed flight mapping shallowly: remote dates
// first, then local dates overwrite on collision. Flights for a date are
// wholesale-replaced rather than merged item by item.
func mergeFlights(local, remote map[string][]domain.Flight) map[string][]domain.Flight {
	if local == nil && remote == nil {
		return nil
	}

	out := make(map[string][]domain.Flight, len(local)+len(remote))
	for date, flights := range remote {
		out[date] = flights
	}
	for date, flights := range local {
		out[date] = flights
	}
	return out
}
