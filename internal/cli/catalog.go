package cli

import (
	"context"
	"errors"
	"fmt"

	"gamerental/cli/internal/models"
	"gamerental/cli/internal/service"
)

// viewCatalog runs the read-only catalog browser submenu.
func (s *Shell) viewCatalog(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, "\nBROWSE CATALOG")
		fmt.Fprintln(s.out, "------------")
		fmt.Fprintln(s.out, "1. View all Games")
		fmt.Fprintln(s.out, "2. Filter by Genre")
		fmt.Fprintln(s.out, "3. Filter by Price")
		fmt.Fprintln(s.out, "4. Sort by Price (low to high)")
		fmt.Fprintln(s.out, "5. Sort by price (high to low)")
		fmt.Fprintln(s.out, "6. Exit Catalog")

		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			games, err := s.svc.Catalog.ListAll(ctx)
			if err != nil {
				return err
			}
			s.printGames(games)
		case 2:
			genre, err := s.readLine("Enter the genre you are looking for: ")
			if err != nil {
				return err
			}
			games, err := s.svc.Catalog.FilterByGenre(ctx, genre)
			if err != nil {
				return err
			}
			s.printGames(games)
		case 3:
			maxPrice, err := s.readFloat("Enter Maximum Price: ")
			if err != nil {
				return err
			}
			games, err := s.svc.Catalog.FilterByPrice(ctx, maxPrice)
			if err != nil {
				return err
			}
			s.printGames(games)
		case 4:
			games, err := s.svc.Catalog.SortByPrice(ctx, true)
			if err != nil {
				return err
			}
			s.printGames(games)
		case 5:
			games, err := s.svc.Catalog.SortByPrice(ctx, false)
			if err != nil {
				return err
			}
			s.printGames(games)
		case 6:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid Input choice!!")
		}
	}
}

// updateCatalog is the manager's field-by-field catalog editor.
func (s *Shell) updateCatalog(ctx context.Context) error {
	manager, err := s.svc.Auth.IsManager(ctx, s.login)
	if err != nil {
		return err
	}
	if !manager {
		fmt.Fprintln(s.out, "\nYou do not have permission to access this.")
		return nil
	}

	for {
		gameID, err := s.readLine("\nPlease input the gameID of the game you would like to update: ")
		if err != nil {
			return err
		}

		game, err := s.svc.Catalog.Get(ctx, gameID)
		if err != nil {
			if errors.Is(err, service.ErrGameNotFound) {
				fmt.Fprintln(s.out, "\nGame not found. Please try again.")
				continue
			}
			return err
		}

		fmt.Fprintln(s.out)
		s.printGames([]models.Game{*game})

		fmt.Fprintln(s.out, "\nWhat would you like to update? \n1. Game Name \n2. Genre \n3. Price \n4. Description \n5. imageURL ")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			value, err := s.readLine("\nGame Name: ")
			if err != nil {
				return err
			}
			if err := s.svc.Catalog.UpdateName(ctx, gameID, value); err != nil {
				return err
			}
		case 2:
			value, err := s.readLine("\nGenre: ")
			if err != nil {
				return err
			}
			if err := s.svc.Catalog.UpdateGenre(ctx, gameID, value); err != nil {
				return err
			}
		case 3:
			value, err := s.readFloat("\nPrice: ")
			if err != nil {
				return err
			}
			if err := s.svc.Catalog.UpdatePrice(ctx, gameID, value); err != nil {
				return err
			}
		case 4:
			value, err := s.readLine("\nDescription: ")
			if err != nil {
				return err
			}
			if err := s.svc.Catalog.UpdateDescription(ctx, gameID, value); err != nil {
				return err
			}
		case 5:
			value, err := s.readLine("\nImage URL: ")
			if err != nil {
				return err
			}
			if err := s.svc.Catalog.UpdateImageURL(ctx, gameID, value); err != nil {
				return err
			}
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
			continue
		}

		again, err := s.askAgain("Game updated successfully.")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
