package controllers

import (
	"context"
	"fmt"

	"Courtside/api/cache"
)

const (
	tournamentSummaryPrefix = "tournament_summary:"
	tournamentListKey       = "tournament_list"
)

func tournamentSummaryKey(tournamentID string) string {
	return fmt.Sprintf("%s%s", tournamentSummaryPrefix, tournamentID)
}

func invalidateTournamentCache(tournamentID string) {
	if tournamentID == "" {
		return
	}
	_ = cache.Delete(context.Background(), tournamentSummaryKey(tournamentID), tournamentListKey)
}

// invalidateAllTournamentCaches drops every cached tournament view. Team
// renames and snapshot imports change what every view shows.
func invalidateAllTournamentCaches() {
	ctx := context.Background()
	_ = cache.DeleteByPrefix(ctx, tournamentSummaryPrefix)
	_ = cache.Delete(ctx, tournamentListKey)
}
