package display

import (
	"fmt"

	"github.com/travigo/mvg/pkg/fahrinfo"
)

// Stations prints "name, place" for every station. Addresses and positions
// are skipped.
func (p *Printer) Stations(locations []fahrinfo.Location) {
	stations := fahrinfo.Stations(locations)
	if len(stations) == 0 {
		p.println(p.mutedStyle.Render("No stations found."))
		return
	}

	for _, station := range stations {
		p.println(station.Name + ", " + station.Place)
	}
}

// Nearby prints stations with their id and products.
func (p *Printer) Nearby(locations []fahrinfo.Location) {
	stations := fahrinfo.Stations(locations)
	if len(stations) == 0 {
		p.println(p.mutedStyle.Render("No stations nearby."))
		return
	}

	for _, station := range stations {
		products := ""
		for i, product := range station.Products {
			if i > 0 {
				products += ", "
			}
			products += product.DisplayName()
		}

		p.println(fmt.Sprintf("%s, %s %s", station.Name, station.Place, p.mutedStyle.Render("("+station.ID+") "+products)))
	}
}
