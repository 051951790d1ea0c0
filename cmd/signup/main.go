package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/annusingmar/signup-backend/internal/registration"
	"github.com/annusingmar/signup-backend/internal/signup"
	"github.com/charmbracelet/log"
)

func main() {
	endpoint := flag.String("endpoint", "http://127.0.0.1:8080/users", "registration endpoint URL")
	timeout := flag.Duration("timeout", 10*time.Second, "registration request timeout")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "signup"})

	nav := signup.NavigatorFunc(func(_ context.Context, path string) error {
		fmt.Printf("Continue at %s\n", path)
		return nil
	})

	form := signup.NewForm(registration.NewClient(*endpoint, *timeout), nav, logger)

	err := run(context.Background(), form, surveyPrompter{})
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(130)
		}
		logger.Fatal(err)
	}
}
