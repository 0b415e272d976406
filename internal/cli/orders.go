package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamerental/cli/internal/service"
)

// placeOrder walks the rental order workflow: header first, then a line
// item per chosen game, then finalization and the tracking record.
func (s *Shell) placeOrder(ctx context.Context) error {
	draft, err := s.svc.Orders.Begin(ctx, s.login)
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(s.out, "\n--PLACE RENTAL ORDER--")
		gameID, err := s.readLine("Enter the game ID of the game you'd like to order: ")
		if err != nil {
			return err
		}
		units, err := s.readInt("How many units would you like?: ")
		if err != nil {
			return err
		}

		total, err := s.svc.Orders.AddGame(ctx, draft, gameID, units)
		if err != nil {
			if errors.Is(err, service.ErrGameNotFound) {
				fmt.Fprintf(s.out, "\nGame %s not found in catalog. Please pick another game.\n", gameID)
				continue
			}
			return err
		}
		fmt.Fprintf(s.out, "\nCurrent Price: $%.2f\n", total)

		response, err := s.readLine("\nWould you like to order more? (Y or N): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(response), "N") {
			break
		}
	}

	if err := s.svc.Orders.Finalize(ctx, draft); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nThe total cost of your order is: $%.2f\n", draft.TotalPrice())
	fmt.Fprintln(s.out, "\nYour order has been placed.")
	fmt.Fprintf(s.out, "Order ID: %s\n", draft.OrderID)
	fmt.Fprintf(s.out, "Tracking ID: %s\n", draft.TrackingID)
	return nil
}

// viewAllOrders prints the caller's full order history.
func (s *Shell) viewAllOrders(ctx context.Context) error {
	history, err := s.svc.Orders.History(ctx, s.login)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Your order history: ")
	s.printHistory(history)
	return nil
}

// viewRecentOrders prints the caller's five most recent orders.
func (s *Shell) viewRecentOrders(ctx context.Context) error {
	history, err := s.svc.Orders.RecentHistory(ctx, s.login)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Your recent 5 orders: ")
	s.printHistory(history)
	return nil
}

// viewOrderInfo shows one order joined with its tracking record. Customers
// may only view their own orders; a refusal offers another attempt.
func (s *Shell) viewOrderInfo(ctx context.Context) error {
	for {
		orderID, err := s.readLine("\nEnter your rental Order ID: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)

		detail, err := s.svc.Orders.Detail(ctx, s.login, orderID)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				fmt.Fprintln(s.out, "Order ID not found. Returning to main menu.")
				return nil
			}
			if errors.Is(err, service.ErrPermissionDenied) {
				fmt.Fprintln(s.out, "You do not have permission to view this order. Please input another order ID or quit to the main menu.")
				choice, err := s.readInt("Enter '1' to input another order ID or '2' to quit: ")
				if err != nil {
					return err
				}
				if choice == 1 {
					continue
				}
				return nil
			}
			return err
		}

		fmt.Fprintln(s.out)
		s.printOrderDetail(detail)
		return nil
	}
}
