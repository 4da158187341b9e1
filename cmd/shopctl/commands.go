package main

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopapi/internal/database/migration"
	"shopapi/internal/model"
	"shopapi/internal/repository"
	"shopapi/internal/repository/postgres"
	"shopapi/internal/security"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply every schema step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				return migration.Apply(ctx, e.db, e.lg)
			})
		},
	}
}

type adminInput struct {
	Email    string
	Name     string
	Password string
}

func newSeedAdminCmd() *cobra.Command {
	var in adminInput
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an active admin, or promote an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				u, created, err := seedAdmin(ctx, postgres.NewUserPostgres(e.db), in)
				if err != nil {
					return err
				}
				e.lg.Info("admin_seeded", zap.String("user_id", u.ID), zap.String("email", u.Email), zap.Bool("created", created))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&in.Name, "name", "Admin", "display name for a new account")
	cmd.Flags().StringVar(&in.Password, "password", "", "password for a new account")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// seedAdmin promotes and activates the account with in.Email, creating it when absent.
func seedAdmin(ctx context.Context, users repository.UserRepository, in adminInput) (*model.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, false, errors.New("email is required")
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Role = model.RoleAdmin
		existing.Active = true
		u, err := users.Update(ctx, existing)
		if err != nil {
			return nil, false, errors.Wrap(err, "promote user")
		}
		return u, false, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, errors.Wrap(err, "find user")
	}

	if len(in.Password) < 6 {
		return nil, false, errors.New("password must be at least 6 characters for a new admin")
	}
	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, false, errors.Wrap(err, "hash password")
	}
	u, err := users.Create(ctx, &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
		Gender:       model.GenderMale,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "create user")
	}
	return u, true, nil
}

func newSeedTaxCmd() *cobra.Command {
	var tax, shipping string
	cmd := &cobra.Command{
		Use:   "seed-tax",
		Short: "Store the tax and shipping settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				t, err := seedTax(ctx, postgres.NewTaxPostgres(e.db), tax, shipping)
				if err != nil {
					return err
				}
				e.lg.Info("tax_seeded", zap.String("tax_price", t.TaxPrice.String()), zap.String("shipping_price", t.ShippingPrice.String()))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tax, "tax", "0", "tax amount added to every order")
	cmd.Flags().StringVar(&shipping, "shipping", "0", "shipping amount added to every order")
	return cmd
}

func seedTax(ctx context.Context, repo repository.TaxRepository, tax, shipping string) (*model.Tax, error) {
	taxPrice, err := parseAmount("tax", tax)
	if err != nil {
		return nil, err
	}
	shippingPrice, err := parseAmount("shipping", shipping)
	if err != nil {
		return nil, err
	}
	t, err := repo.Upsert(ctx, &model.Tax{TaxPrice: taxPrice, ShippingPrice: shippingPrice})
	if err != nil {
		return nil, errors.Wrap(err, "store tax")
	}
	return t, nil
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.Errorf("invalid %s amount %q", name, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Errorf("%s amount must not be negative", name)
	}
	return d, nil
}
