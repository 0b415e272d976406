package cli

import (
	"context"
	"errors"
	"fmt"

	"gamerental/cli/internal/service"
)

// updateUser is the manager's editor for another user's role and overdue
// count.
func (s *Shell) updateUser(ctx context.Context) error {
	manager, err := s.svc.Auth.IsManager(ctx, s.login)
	if err != nil {
		return err
	}
	if !manager {
		fmt.Fprintln(s.out, "\nYou do not have permission to access this.")
		return nil
	}

	for {
		target, err := s.readLine("\nEnter the user's login to update: ")
		if err != nil {
			return err
		}

		user, err := s.svc.Users.Get(ctx, target)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				fmt.Fprintln(s.out, "\nUser not found. Please try again.")
				continue
			}
			return err
		}

		favGames := ""
		if user.FavGames != nil {
			favGames = *user.FavGames
		}
		fmt.Fprintln(s.out)
		s.printTable(
			[]string{"login", "password", "role", "favGames", "phoneNum", "numOverDueGames"},
			[][]string{{
				user.Login,
				user.Password,
				user.Role,
				favGames,
				user.PhoneNum,
				fmt.Sprintf("%d", user.NumOverDueGames),
			}},
		)

		fmt.Fprintln(s.out, "\nWhat would you like to update? \n1. User's Role \n2. User's Number of Overdue Games ")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			role, err := s.readLine("\nUser's New Role: ")
			if err != nil {
				return err
			}
			if err := s.svc.Users.UpdateRole(ctx, target, role); err != nil {
				return err
			}
		case 2:
			count, err := s.readInt("\nUser's New Number of Overdue Games: ")
			if err != nil {
				return err
			}
			if err := s.svc.Users.UpdateOverdueCount(ctx, target, count); err != nil {
				return err
			}
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
			continue
		}

		again, err := s.askAgain("Profile updated successfully.")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
