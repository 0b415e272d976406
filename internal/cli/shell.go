package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gamerental/cli/internal/service"
)

// Services bundles everything the shell dispatches to.
type Services struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Tracking *service.TrackingService
}

// Shell is the interactive menu loop. It owns the input reader, the output
// writers and the session state (the logged-in login, or "" when nobody is
// authenticated). I/O is injected so tests can drive it with scripted
// input.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	svc    Services

	login string
}

// NewShell creates a shell reading from in and writing to out/errOut.
func NewShell(in io.Reader, out, errOut io.Writer, svc Services) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		svc:    svc,
	}
}

// Run drives the top-level menu until the user exits or input runs dry.
func (s *Shell) Run(ctx context.Context) {
	s.greeting()

	for {
		fmt.Fprintln(s.out, "MAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. Create user")
		fmt.Fprintln(s.out, "2. Log in")
		fmt.Fprintln(s.out, "9. < EXIT")

		choice, err := s.readChoice()
		if err != nil {
			return
		}

		switch choice {
		case 1:
			if err := s.createUser(ctx); s.reportErr(err) {
				return
			}
		case 2:
			ok, err := s.logIn(ctx)
			if s.reportErr(err) {
				return
			}
			if ok {
				if done := s.userLoop(ctx); done {
					return
				}
			}
		case 9:
			return
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}
	}
}

// userLoop drives the authenticated menu until log out. It returns true
// when input is exhausted and the whole program should stop.
func (s *Shell) userLoop(ctx context.Context) bool {
	for {
		fmt.Fprintln(s.out, "\nMAIN MENU")
		fmt.Fprintln(s.out, "---------")
		fmt.Fprintln(s.out, "1. View Profile")
		fmt.Fprintln(s.out, "2. Update Profile")
		fmt.Fprintln(s.out, "3. View Catalog")
		fmt.Fprintln(s.out, "4. Place Rental Order")
		fmt.Fprintln(s.out, "5. View Full Rental Order History")
		fmt.Fprintln(s.out, "6. View Past 5 Rental Orders")
		fmt.Fprintln(s.out, "7. View Rental Order Information")
		fmt.Fprintln(s.out, "8. View Tracking Information")
		fmt.Fprintln(s.out, "9. Update Tracking Information")
		fmt.Fprintln(s.out, "10. Update Catalog")
		fmt.Fprintln(s.out, "11. Update User")
		fmt.Fprintln(s.out, ".........................")
		fmt.Fprintln(s.out, "20. Log out")

		choice, err := s.readChoice()
		if err != nil {
			return true
		}

		switch choice {
		case 1:
			err = s.viewProfile(ctx)
		case 2:
			err = s.updateProfile(ctx)
		case 3:
			err = s.viewCatalog(ctx)
		case 4:
			err = s.placeOrder(ctx)
		case 5:
			err = s.viewAllOrders(ctx)
		case 6:
			err = s.viewRecentOrders(ctx)
		case 7:
			err = s.viewOrderInfo(ctx)
		case 8:
			err = s.viewTrackingInfo(ctx)
		case 9:
			err = s.updateTrackingInfo(ctx)
		case 10:
			err = s.updateCatalog(ctx)
		case 11:
			err = s.updateUser(ctx)
		case 20:
			s.login = ""
			return false
		default:
			fmt.Fprintln(s.out, "Unrecognized choice!")
		}

		if s.reportErr(err) {
			return true
		}
	}
}

func (s *Shell) greeting() {
	fmt.Fprintln(s.out, "\n*******************************************************")
	fmt.Fprintln(s.out, "              Game Rental Store")
	fmt.Fprintln(s.out, "*******************************************************")
}

// reportErr prints a handler error and reports whether the shell should
// stop entirely (input exhausted).
func (s *Shell) reportErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) {
		return true
	}
	fmt.Fprintln(s.errOut, err)
	return false
}

// readLine prints a prompt and reads one raw input line.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice reads a menu choice, re-prompting until the input parses as
// an integer.
func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.readLine("\nPlease make your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}
		return choice, nil
	}
}

// readInt reads one integer; a parse failure aborts the calling handler.
func (s *Shell) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", strings.TrimSpace(line))
	}
	return n, nil
}

// readFloat reads one decimal number; a parse failure aborts the calling
// handler.
func (s *Shell) readFloat(prompt string) (float64, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", strings.TrimSpace(line))
	}
	return f, nil
}

// askAgain asks "1. Yes / 2. No" and reports whether to keep looping.
func (s *Shell) askAgain(message string) (bool, error) {
	fmt.Fprintf(s.out, "\n%s Would you like to update again? \n1. Yes \n2. No\n", message)
	choice, err := s.readChoice()
	if err != nil {
		return false, err
	}
	return choice != 2, nil
}
