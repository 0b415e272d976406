package cli

import (
	"fmt"
	"strings"

	"gamerental/cli/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// printTable writes a tab-separated header row followed by the value rows,
// the way query results have always been rendered here.
func (s *Shell) printTable(header []string, rows [][]string) {
	fmt.Fprintln(s.out, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(s.out, strings.Join(row, "\t"))
	}
}

func (s *Shell) printGames(games []models.Game) {
	rows := make([][]string, len(games))
	for i, g := range games {
		rows[i] = []string{
			g.GameID,
			g.GameName,
			g.Genre,
			fmt.Sprintf("%.2f", g.Price),
			g.Description,
			g.ImageURL,
		}
	}
	s.printTable([]string{"gameID", "gameName", "genre", "price", "description", "imageURL"}, rows)
}

func (s *Shell) printHistory(history []models.OrderHistoryRow) {
	rows := make([][]string, len(history))
	for i, h := range history {
		rows[i] = []string{
			h.RentalOrderID,
			h.GameName,
			h.OrderTimestamp.Format(timestampLayout),
			h.DueDate.Format(timestampLayout),
		}
	}
	s.printTable([]string{"rentalOrderID", "gameName", "orderTimestamp", "dueDate"}, rows)
}

func (s *Shell) printOrderDetail(d *models.OrderDetail) {
	s.printTable(
		[]string{
			"rentalOrderID", "login", "noOfGames", "totalPrice", "orderTimestamp", "dueDate",
			"trackingID", "status", "currentLocation", "courierName", "lastUpdateDate", "additionalComments",
		},
		[][]string{{
			d.Order.RentalOrderID,
			d.Order.Login,
			fmt.Sprintf("%d", d.Order.NoOfGames),
			fmt.Sprintf("%.2f", d.Order.TotalPrice),
			d.Order.OrderTimestamp.Format(timestampLayout),
			d.Order.DueDate.Format(timestampLayout),
			d.Tracking.TrackingID,
			d.Tracking.Status,
			d.Tracking.CurrentLocation,
			d.Tracking.CourierName,
			d.Tracking.LastUpdateDate.Format(timestampLayout),
			d.Tracking.AdditionalComments,
		}},
	)
}

func (s *Shell) printTracking(info *models.TrackingInfo) {
	s.printTable(
		[]string{"trackingID", "rentalOrderID", "courierName", "currentLocation", "status", "lastUpdateDate", "additionalComments"},
		[][]string{{
			info.TrackingID,
			info.RentalOrderID,
			info.CourierName,
			info.CurrentLocation,
			info.Status,
			info.LastUpdateDate.Format(timestampLayout),
			info.AdditionalComments,
		}},
	)
}
