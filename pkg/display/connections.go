package display

import (
	"fmt"

	"github.com/travigo/mvg/pkg/fahrinfo"
)

func (p *Printer) Connections(connections []fahrinfo.Connection) {
	if len(connections) == 0 {
		p.println(p.mutedStyle.Render("No connections found."))
		return
	}

	for i, connection := range connections {
		if i > 0 {
			p.println()
		}
		p.Connection(connection)
	}
}

func (p *Printer) Connection(connection fahrinfo.Connection) {
	transfers := connection.Transfers()
	plural := "s"
	if transfers == 1 {
		plural = ""
	}

	p.println(p.headerStyle.Render(fmt.Sprintf("%s -> %s  %d min, %d transfer%s",
		p.Clock(connection.DepartureTime()),
		p.Clock(connection.ArrivalTime()),
		int(connection.Duration().Minutes()),
		transfers,
		plural,
	)))

	for _, part := range connection.ConnectionPartList {
		p.println("  " + p.connectionPart(part))
	}
}

func (p *Printer) connectionPart(part fahrinfo.ConnectionPart) string {
	line := fmt.Sprintf("%s %s -> %s %s", p.Clock(part.DepartureTime()), locationLabel(part.From()), locationLabel(part.To()), p.Clock(part.ArrivalTime()))

	if footway, ok := part.AsFootway(); ok {
		minutes := int(part.ArrivalTime().Sub(part.DepartureTime()).Minutes())
		return p.mutedStyle.Render(fmt.Sprintf("walk %d min  ", minutes)) + line + p.partSuffix(footway.Cancelled, nil)
	}

	transportation, ok := part.AsTransportation()
	if !ok {
		return line
	}

	label := p.LineLabel(transportation.Label, "")
	details := fmt.Sprintf(" %s %s  ", transportation.Product.DisplayName(), transportation.Destination)
	if transportation.DeparturePlatform != "" {
		line += p.mutedStyle.Render("  from " + transportation.DeparturePlatform)
	}
	return label + details + line + p.partSuffix(transportation.Cancelled, transportation.InfoMessages)
}

func (p *Printer) partSuffix(cancelled bool, messages []string) string {
	suffix := ""
	if cancelled {
		suffix += p.warningStyle.Render("  cancelled")
	}
	for _, message := range messages {
		suffix += "\n    " + p.mutedStyle.Render(message)
	}
	return suffix
}

// locationLabel falls back to coordinates for bare positions.
func locationLabel(location fahrinfo.Location) string {
	if name := location.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%.4f,%.4f", location.Latitude(), location.Longitude())
}
