package cli

import (
	"context"
	"errors"
	"fmt"

	"gamerental/cli/internal/service"
)

// createUser walks account setup. New accounts are always customers.
func (s *Shell) createUser(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n \tACCOUNT SETUP")
	login, err := s.readLine("\tEnter login: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("\tEnter password: ")
	if err != nil {
		return err
	}
	phoneNum, err := s.readLine("\tEnter phone number: ")
	if err != nil {
		return err
	}

	if err := s.svc.Auth.CreateUser(ctx, login, password, phoneNum); err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			fmt.Fprintln(s.out, "\nLogin already taken. Please try again.")
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "\nUser successfully created. Welcome, %s!\n", login)
	return nil
}

// logIn authenticates and, on success, stores the login as the session.
func (s *Shell) logIn(ctx context.Context) (bool, error) {
	login, err := s.readLine("\n\tEnter login: ")
	if err != nil {
		return false, err
	}
	password, err := s.readLine("\tEnter password: ")
	if err != nil {
		return false, err
	}

	if err := s.svc.Auth.Login(ctx, login, password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(s.out, "\nLogin unsuccessful. Please re-enter your login/password.")
			return false, nil
		}
		return false, err
	}

	s.login = login
	fmt.Fprintf(s.out, "\nLogin successful. Welcome, %s!\n", login)
	return true, nil
}

// viewProfile shows the caller's favorite games, overdue count and phone
// number.
func (s *Shell) viewProfile(ctx context.Context) error {
	user, err := s.svc.Users.Get(ctx, s.login)
	if err != nil {
		return err
	}

	favGames := ""
	if user.FavGames != nil {
		favGames = *user.FavGames
	}

	fmt.Fprintln(s.out)
	s.printTable([]string{"Favorite Games"}, [][]string{{favGames}})
	fmt.Fprintln(s.out)
	s.printTable([]string{"Number of Overdue Games"}, [][]string{{fmt.Sprintf("%d", user.NumOverDueGames)}})
	fmt.Fprintln(s.out)
	s.printTable([]string{"Phone Number"}, [][]string{{user.PhoneNum}})
	return nil
}

// updateProfile loops over the self-service profile fields.
func (s *Shell) updateProfile(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\n What would you like to update? \n1. Favorite Games \n2. Password \n3. Phone Number ")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			value, err := s.readLine("\nFavorite Games: ")
			if err != nil {
				return err
			}
			if err := s.svc.Users.UpdateFavGames(ctx, s.login, value); err != nil {
				return err
			}
		case 2:
			value, err := s.readLine("\nNew Password: ")
			if err != nil {
				return err
			}
			if err := s.svc.Users.UpdatePassword(ctx, s.login, value); err != nil {
				return err
			}
		case 3:
			value, err := s.readLine("\nNew Phone Number: ")
			if err != nil {
				return err
			}
			if err := s.svc.Users.UpdatePhoneNum(ctx, s.login, value); err != nil {
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
