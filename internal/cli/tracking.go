package cli

import (
	"context"
	"errors"
	"fmt"

	"gamerental/cli/internal/service"
)

// viewTrackingInfo shows one tracking record, keyed by the tracking id and
// order id pair. Customers may only view their own.
func (s *Shell) viewTrackingInfo(ctx context.Context) error {
	trackingID, err := s.readLine("\nEnter your tracking ID: ")
	if err != nil {
		return err
	}
	orderID, err := s.readLine("Enter your rental order ID: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	info, err := s.svc.Tracking.View(ctx, s.login, trackingID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			fmt.Fprintln(s.out, "Order ID not found. Returning to main menu.")
			return nil
		case errors.Is(err, service.ErrPermissionDenied):
			fmt.Fprintln(s.out, "You do not have permission to view this tracking information.")
			return nil
		case errors.Is(err, service.ErrTrackingNotFound):
			fmt.Fprintln(s.out, "Tracking record not found. Returning to main menu.")
			return nil
		}
		return err
	}

	fmt.Fprintln(s.out)
	s.printTracking(info)
	return nil
}

// updateTrackingInfo is the employee/manager field-by-field tracking
// editor. Every write also refreshes the last-update timestamp.
func (s *Shell) updateTrackingInfo(ctx context.Context) error {
	privileged, err := s.svc.Auth.IsEmployeeOrManager(ctx, s.login)
	if err != nil {
		return err
	}
	if !privileged {
		fmt.Fprintln(s.out, "Access Denied: Only employees or managers can update the tracking information.")
		return nil
	}

	for {
		trackingID, err := s.readLine("\nEnter your tracking ID: ")
		if err != nil {
			return err
		}

		info, err := s.svc.Tracking.Get(ctx, trackingID)
		if err != nil {
			if errors.Is(err, service.ErrTrackingNotFound) {
				fmt.Fprintln(s.out, "\nTracking record not found. Please try again.")
				continue
			}
			return err
		}

		fmt.Fprintln(s.out)
		s.printTracking(info)

		fmt.Fprintln(s.out, "\nWhat would you like to update? \n1. Status \n2. Current Location \n3. Courier Name \n4. Additional Comments ")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		var field service.TrackingField
		var prompt string
		switch choice {
		case 1:
			field, prompt = service.TrackingFieldStatus, "\nNew Status: "
		case 2:
			field, prompt = service.TrackingFieldLocation, "\nNew Current Location: "
		case 3:
			field, prompt = service.TrackingFieldCourier, "\nNew Courier Name: "
		case 4:
			field, prompt = service.TrackingFieldComments, "\nNew Additional Comments: "
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
			continue
		}

		value, err := s.readLine(prompt)
		if err != nil {
			return err
		}
		if err := s.svc.Tracking.UpdateField(ctx, s.login, trackingID, field, value); err != nil {
			return err
		}

		again, err := s.askAgain("Tracking information updated successfully.")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
