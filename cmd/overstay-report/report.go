package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/roomview"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type overstay struct {
	Room         string          `json:"room"`
	Guest        string          `json:"guest"`
	Phone        string          `json:"phone,omitempty"`
	CheckOut     time.Time       `json:"check_out"`
	HoursOverdue int             `json:"hours_overdue"`
	Balance      decimal.Decimal `json:"balance"`
}

// collect keeps the overstayed rooms, longest overdue first.
func collect(states []board.RoomState, now time.Time) []overstay {
	out := []overstay{}
	for _, st := range states {
		r := st.Room
		if r.Status != domain.RoomStatusOverstay || r.CheckOut == nil {
			continue
		}
		o := overstay{
			Room:         r.Number,
			CheckOut:     *r.CheckOut,
			HoursOverdue: roomview.OverstayHours(r, now),
		}
		if r.Guest != nil {
			o.Guest = r.Guest.Name
			o.Phone = r.Guest.Phone
		}
		if r.Folio != nil {
			o.Balance = r.Folio.Balance
		}
		out = append(out, o)
	}

	slices.SortStableFunc(out, func(a, b overstay) int {
		return cmp.Compare(b.HoursOverdue, a.HoursOverdue)
	})
	return out
}

func render(w io.Writer, format string, rows []overstay) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No overstayed rooms.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tGUEST\tCHECKOUT\tOVERDUE\tBALANCE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dh\t%s\n",
			r.Room, r.Guest, r.CheckOut.Format("2006-01-02 15:04"), r.HoursOverdue, r.Balance.StringFixed(2))
	}
	return tw.Flush()
}
