package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/config"
	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/render"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/blaisecz/cycle-tracker/internal/seed"
	"github.com/blaisecz/cycle-tracker/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const commandTimeout = 60 * time.Second

type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           "cyclectl",
		Short:         "Cycle tracker command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Load reads .env, so flag defaults already reflect it.
	defaults := config.Load()
	flags := root.PersistentFlags()
	flags.String("database-url", defaults.DatabaseURL, "Database connection string (env DATABASE_URL)")
	flags.String("database-driver", defaults.DatabaseDriver, "Database driver: postgres or sqlite (env DATABASE_DRIVER)")
	flags.String("log-level", "info", "Log level (env LOG_LEVEL)")
	flags.String("timezone", defaults.PredictionTimezone, "Timezone for users without one (env PREDICTION_TIMEZONE)")

	_ = c.v.BindPFlag("DATABASE_URL", flags.Lookup("database-url"))
	_ = c.v.BindPFlag("DATABASE_DRIVER", flags.Lookup("database-driver"))
	_ = c.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("PREDICTION_TIMEZONE", flags.Lookup("timezone"))
	c.v.AutomaticEnv()

	root.AddCommand(c.newPredictCmd(), c.newStatsCmd(), c.newCalendarCmd(), c.newSeedCmd())
	return root
}

func (c *cli) config() *config.Config {
	return &config.Config{
		DatabaseDriver: c.v.GetString("DATABASE_DRIVER"),
		DatabaseURL:    c.v.GetString("DATABASE_URL"),
		LogLevel:       c.v.GetString("LOG_LEVEL"),
		LogFormat:      "console",
		ServiceName:    "cyclectl",

		PredictionTimezone: c.v.GetString("PREDICTION_TIMEZONE"),
	}
}

func (c *cli) open(ctx context.Context) (*gorm.DB, zerolog.Logger, error) {
	cfg := c.config()
	log := config.NewLogger(cfg)

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return nil, log, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := config.Migrate(db.WithContext(ctx)); err != nil {
		return nil, log, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, log, nil
}

func (c *cli) newPredictCmd() *cobra.Command {
	var (
		date           string
		cycleLength    int
		periodDuration int
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the next period, ovulation and fertile window",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := cycle.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
			}

			entry := domain.PeriodEntry{LastPeriodDate: start, CycleLength: cycleLength, PeriodDuration: periodDuration}
			if err := entry.Validate(); err != nil {
				return err
			}

			p := cycle.CalculatePeriodStats(entry.CycleEntry())
			predicted := p.PredictedPeriod(periodDuration)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Next period:      %s\n", cycle.DayKey(p.NextPeriodPrediction))
			fmt.Fprintf(out, "Ovulation:        %s\n", cycle.DayKey(p.OvulationPrediction))
			fmt.Fprintf(out, "Fertile window:   %s to %s\n", cycle.DayKey(p.Fertility.Start), cycle.DayKey(p.Fertility.End))
			fmt.Fprintf(out, "Predicted period: %s to %s\n", cycle.DayKey(predicted.Start), cycle.DayKey(predicted.End))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "First day of the last period (YYYY-MM-DD)")
	cmd.Flags().IntVar(&cycleLength, "cycle-length", domain.DefaultCycleLength, "Days between period starts")
	cmd.Flags().IntVar(&periodDuration, "period-duration", domain.DefaultPeriodDuration, "Days of bleeding")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func (c *cli) newStatsCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print entry count and averages for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", user, err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			db, log, err := c.open(ctx)
			if err != nil {
				return err
			}
			ctx = log.WithContext(ctx)

			userRepo := repository.NewUserRepository(db)
			entryRepo := repository.NewPeriodEntryRepository(db)

			stats, err := service.NewPeriodEntryService(entryRepo, userRepo).Stats(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Entries:             %d\n", stats.Count)
			fmt.Fprintf(out, "Avg cycle length:    %.1f\n", stats.AvgCycleLength)
			fmt.Fprintf(out, "Avg period duration: %.1f\n", stats.AvgPeriodDuration)
			if stats.Count == 0 {
				return nil
			}

			latest, err := service.NewPredictionService(entryRepo, userRepo, c.config().PredictionLocation()).Latest(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load latest prediction: %w", err)
			}
			fmt.Fprintf(out, "Latest period start: %s\n", latest.LastPeriodDate)
			fmt.Fprintf(out, "Next period:         %s\n", cycle.DayKey(latest.Prediction.NextPeriodPrediction))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (c *cli) newCalendarCmd() *cobra.Command {
	var (
		user    string
		month   string
		variant string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Draw a user's month calendar as a PNG in their theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", user, err)
			}
			// Zero leaves the current month to the user's timezone.
			var m time.Time
			if month != "" {
				if m, err = time.Parse("2006-01", month); err != nil {
					return fmt.Errorf("invalid --month %q: expected YYYY-MM", month)
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			db, log, err := c.open(ctx)
			if err != nil {
				return err
			}
			ctx = log.WithContext(ctx)

			userRepo := repository.NewUserRepository(db)
			entryRepo := repository.NewPeriodEntryRepository(db)

			cal, err := service.NewPredictionService(entryRepo, userRepo, c.config().PredictionLocation()).Calendar(ctx, userID, m, variant)
			if err != nil {
				return fmt.Errorf("failed to build calendar: %w", err)
			}
			settings, err := service.NewSettingsService(repository.NewSettingsRepository(db), userRepo).Get(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			resolved, err := time.Parse("2006-01", cal.Month)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render.Calendar(&buf, resolved, cal.Days, settings.Theme.Background()); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %s theme)\n", out, cal.Month, settings.Theme)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User UUID")
	cmd.Flags().StringVar(&month, "month", "", "Month to draw (YYYY-MM), defaults to the current month")
	cmd.Flags().StringVar(&variant, "variant", cycle.VariantFull, "Calendar variant: full or mini")
	cmd.Flags().StringVar(&out, "out", "calendar.png", "Output PNG file")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (c *cli) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create sample users and period entries (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			db, log, err := c.open(ctx)
			if err != nil {
				return err
			}
			if err := seed.Run(db.WithContext(ctx), log); err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seed completed")
			return nil
		},
	}
}
