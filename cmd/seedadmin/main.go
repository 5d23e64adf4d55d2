// Command seedadmin provisions an ADMIN account; self-registration never grants that role.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bakery/config"
	"bakery/internal/domain/lifecycle"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/infra/auth"
	logs "bakery/internal/infra/log"
	"bakery/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

const passwordEnv = "BAKERY_ADMIN_PASSWORD"

func main() {
	email := flag.String("email", "", "Admin e-mail address")
	firstName := flag.String("first-name", "Admin", "Admin first name")
	lastName := flag.String("last-name", "User", "Admin last name")
	flag.Parse()

	input := seedInput{
		Email:     *email,
		Password:  os.Getenv(passwordEnv),
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := run(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input seedInput) error {
	var (
		users  repository.UserRepository
		hasher service.PasswordHasher
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Populate(&users, &hasher),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	created, err := seedAdmin(context.Background(), users, hasher, input)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Admin %s created\n", input.Email)
	} else {
		fmt.Printf("Admin %s already exists\n", input.Email)
	}

	return nil
}
