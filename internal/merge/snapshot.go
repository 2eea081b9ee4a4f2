package merge

import "wayfare-sync-server/internal/domain"

// Snapshot merges two whole-state snapshots. The profile is merged field-wise
// with local always preferred; custom events are union-merged; trips are
// merged per id using the resolution map, defaulting to local when a trip id
// has no entry. A trip present on only one side passes through unchanged —
// merging never deletes a trip.
func Snapshot(local, remote domain.Snapshot, resolutions map[string]domain.Resolution) domain.Snapshot {
	return domain.Snapshot{
		UserProfile:  mergeProfile(local.UserProfile, remote.UserProfile),
		CustomEvents: Lists(local.CustomEvents, remote.CustomEvents),
		Trips:        mergeTrips(local.Trips, remote.Trips, resolutions),
	}
}

// mergeTrips unions the two trip collections by id. Ordering mirrors Lists:
// remote-origin trips first, local-only trips appended.
func mergeTrips(local, remote []domain.Trip, resolutions map[string]domain.Resolution) []domain.Trip {
	localByID := make(map[string]domain.Trip, len(local))
	for _, t := range local {
		localByID[t.ID] = t
	}

	out := make([]domain.Trip, 0, len(remote)+len(local))
	seen := make(map[string]bool, len(remote)+len(local))

	for _, remoteTrip := range remote {
		if seen[remoteTrip.ID] {
			continue
		}
		seen[remoteTrip.ID] = true

		localTrip, onBothSides := localByID[remoteTrip.ID]
		if !onBothSides {
			out = append(out, remoteTrip)
			continue
		}

		choice := resolutions[remoteTrip.ID]
		if choice != domain.ResolutionRemote {
			choice = domain.ResolutionLocal
		}
		out = append(out, Trip(localTrip, remoteTrip, choice))
	}

	for _, localTrip := range local {
		if seen[localTrip.ID] {
			continue
		}
		seen[localTrip.ID] = true
		out = append(out, localTrip)
	}

	return out
}

// mergeProfile overlays local profile fields on remote, using remote values
// only where local is blank. The profile has no per-trip recency concept, so
// the resolution map never applies here.
func mergeProfile(local, remote domain.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		DisplayName:  firstNonEmpty(local.DisplayName, remote.DisplayName),
		Email:        firstNonEmpty(local.Email, remote.Email),
		AvatarURL:    firstNonEmpty(local.AvatarURL, remote.AvatarURL),
		HomeCurrency: firstNonEmpty(local.HomeCurrency, remote.HomeCurrency),
		HomeAirport:  firstNonEmpty(local.HomeAirport, remote.HomeAirport),
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
