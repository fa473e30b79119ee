package main

import (
	"sort"

	"github.com/pterm/pterm"

	"omaha-recon/card"
	"omaha-recon/detect"
	"omaha-recon/recon"
)

// renderSnapshot draws one reconciled cycle as a terminal dashboard: board
// and hero panels on top, the seat map and validated history below.
func renderSnapshot(snap *recon.Snapshot) {
	board := pterm.Panel{Data: boardPanel(snap)}
	hero := pterm.Panel{Data: heroPanel(snap)}
	seats := pterm.Panel{Data: seatsPanel(snap)}
	history := pterm.Panel{Data: historyPanel(snap)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{board, hero},
		{seats, history},
	}).Render()
}

func boardPanel(snap *recon.Snapshot) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := formatDetections(snap.TableCards)
	if cards == "" {
		cards = "(no community cards)"
	}
	body := pterm.Sprintfln("%s", cards)
	body += pterm.Sprintfln("Street: %s", snap.StreetDisplay())
	return pbox.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Sprintf("%s", body)
}

func heroPanel(snap *recon.Snapshot) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := formatDetections(snap.PlayerCards)
	if cards == "" {
		cards = "(no hole cards)"
	}
	body := pterm.Sprintfln("%s", cards)
	if snap.HeroHand != nil {
		body += pterm.Sprintfln("Best hand: %s", pterm.LightCyan(snap.HeroHand.String()))
	}
	return pbox.WithTitle(pterm.LightGreen("|HERO|")).WithTitleTopCenter().Sprintf("%s", body)
}

func seatsPanel(snap *recon.Snapshot) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	seatIDs := make([]int, 0, len(snap.Positions))
	for seat := range snap.Positions {
		seatIDs = append(seatIDs, seat)
	}
	sort.Ints(seatIDs)

	body := ""
	for _, seat := range seatIDs {
		d := snap.Positions[seat]
		if d.Name == detect.Sentinel {
			body += pterm.Sprintfln("seat %d: %s", seat, pterm.Gray("empty"))
			continue
		}
		line := pterm.Sprintf("seat %d: %-12s", seat, d.Name)
		if pos, ok := snap.Seats[seat]; ok {
			line += pterm.Sprintf(" -> %s", pterm.LightCyan(pos.String()))
		} else {
			line += pterm.Sprintf(" -> %s", pterm.LightRed("unresolved"))
		}
		body += line + "\n"
	}
	if body == "" {
		body = "(no badge detections)"
	}
	return pbox.WithTitle(pterm.LightYellow("|SEATS|")).WithTitleTopCenter().Sprintf("%s", body)
}

func historyPanel(snap *recon.Snapshot) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if !snap.HasMoves() {
		return pbox.WithTitle(pterm.LightRed("|HISTORY|")).WithTitleTopCenter().Sprintf("%s", "(no validated moves)")
	}

	body := ""
	for _, street := range snap.StreetsWithMoves() {
		body += pterm.Sprintfln("%s:", pterm.LightGreen(street.String()))
		for _, rec := range snap.Moves[street] {
			body += pterm.Sprintfln("  %s %s", rec.Position, rec.Move)
		}
	}
	return pbox.WithTitle(pterm.LightGreen("|HISTORY|")).WithTitleTopCenter().Sprintf("%s", body)
}

// formatDetections renders card detections as unicode card names, falling
// back to the raw detection name for anything that does not parse.
func formatDetections(detections []detect.Detection) string {
	out := ""
	for i, d := range detections {
		if i > 0 {
			out += " "
		}
		if c, err := card.ParseTemplate(d.Name); err == nil {
			out += c.Unicode()
		} else {
			out += d.Name + "?"
		}
	}
	return out
}
