package loader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
)

// Folios resolves folio summaries for the board. Inside an HTTP request it
// goes through the request's loader; elsewhere (CLI, background refetch
// without a request) it queries the repository directly.
type Folios struct {
	repo folioRepo
}

// NewFolios creates a Folios source.
func NewFolios(repo folioRepo) *Folios {
	return &Folios{repo: repo}
}

// FoliosByReservation returns the folios keyed by reservation id. Reservations
// without a folio are absent from the map.
func (f *Folios) FoliosByReservation(ctx context.Context, tenantID uuid.UUID, reservationIDs []uuid.UUID) (map[uuid.UUID]domain.FolioRow, error) {
	out := make(map[uuid.UUID]domain.FolioRow, len(reservationIDs))
	if len(reservationIDs) == 0 {
		return out, nil
	}

	l, ok := FromContext(ctx)
	if !ok {
		rows, err := f.repo.GetByReservationIDs(ctx, tenantID, reservationIDs)
		if err != nil {
			return nil, fmt.Errorf("folios by reservation: %w", err)
		}
		for _, r := range rows {
			out[r.ReservationID] = r
		}
		return out, nil
	}

	results, errs := l.FolioByReservationID.LoadMany(ctx, reservationIDs)()
	for i, id := range reservationIDs {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("folio for reservation %s: %w", id, errs[i])
		}
		if results[i] != nil {
			out[id] = *results[i]
		}
	}
	return out, nil
}
