package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/travigo/mvg/pkg/fahrinfo"
	"github.com/travigo/mvg/pkg/util"
)

const (
	labelWidth       = 4
	destinationWidth = 32
)

func (p *Printer) Departures(station *fahrinfo.Station, departures []fahrinfo.Departure, now time.Time) {
	p.println(p.headerStyle.Render(fmt.Sprintf("Departures at station %s, %s:", station.Name, station.Place)))

	if len(departures) == 0 {
		p.println(p.mutedStyle.Render("No departures."))
		return
	}

	for _, departure := range departures {
		p.println(p.DepartureRow(departure, now))
	}
}

func (p *Printer) DepartureRow(departure fahrinfo.Departure, now time.Time) string {
	var row strings.Builder

	row.WriteString(p.LineLabel(util.PadString(departure.Label, labelWidth), departure.LineBackgroundColor))
	row.WriteString(" ")
	row.WriteString(util.PadString(departure.Destination, destinationWidth))
	row.WriteString(" ")
	row.WriteString(p.Clock(departure.Time()))

	minutes := fmt.Sprintf(" %3d min", departure.MinutesUntil(now))
	if departure.Live {
		row.WriteString(p.liveStyle.Render(minutes))
	} else {
		row.WriteString(minutes)
	}

	if departure.Platform != "" {
		row.WriteString(p.mutedStyle.Render("  Gl. " + departure.Platform))
	}
	if departure.Sev {
		row.WriteString(p.warningStyle.Render("  SEV"))
	}
	if departure.Cancelled {
		row.WriteString(p.warningStyle.Render("  cancelled"))
	}

	return row.String()
}
