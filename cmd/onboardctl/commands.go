package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/onboard/internal/config"
	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/JonMunkholm/onboard/internal/files"
	"github.com/JonMunkholm/onboard/internal/logging"
	"github.com/JonMunkholm/onboard/internal/store"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "onboardctl",
		Short:         "Operator tools for CyberCore vendor onboarding",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(markPaidCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(certCmd())

	return rootCmd
}

// env is what every subcommand needs, built from the same configuration as
// the server.
type env struct {
	cfg     *config.Config
	store   core.Store
	service *core.Service
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// Logs go to stderr so command output stays clean for pipes.
	slog.SetDefault(logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format))

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open datastore: %w", err)
	}
	disk, err := files.NewDisk(cfg.Upload.Dir)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &env{
		cfg:     cfg,
		store:   st,
		service: core.NewService(st, disk),
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the vendor and document tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s datastore ready\n", store.Kind(e.cfg.Database.URL))
			return nil
		},
	}
}

// adminKeyEnv supplies the admin secret when --api-key is not given.
const adminKeyEnv = "ONBOARD_ADMIN_KEY"

func markPaidCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "mark-paid [vendor-id]",
		Short: "Confirm payment and re-derive verification for a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			key := apiKey
			if key == "" {
				key = os.Getenv(adminKeyEnv)
			}
			if err := core.CheckAdminKey(key, e.cfg.Security.AdminAPIKey); err != nil {
				slog.Warn("mark-paid: admin key rejected", "vendor_id", args[0], "missing", key == "")
				return fmt.Errorf("mark-paid %s: %w", args[0], err)
			}

			v, err := e.service.MarkPaid(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"vendor_id": v.ID,
				"paid":      v.Paid,
				"score":     v.Score,
				"verified":  v.Verified,
			})
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "admin secret (default: $"+adminKeyEnv+")")

	return cmd
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [vendor-id]",
		Short: "Print the completeness score, price and tier without changing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			rev, err := e.service.Review(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vendor:   %s\n", rev.Vendor.LegalName)
			fmt.Fprintf(out, "Score:    %d/100\n", rev.Score)
			fmt.Fprintf(out, "Price:    %s\n", core.Dollars(rev.Price))
			fmt.Fprintf(out, "Tier:     %s\n", rev.Tier)
			fmt.Fprintf(out, "Paid:     %v\n", rev.Vendor.Paid)
			fmt.Fprintf(out, "Verified: %v\n", rev.Vendor.Verified)
			return nil
		},
	}
}

func certCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cert [vendor-id]",
		Short: "Write the certificate PDF for a verified vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			issued, err := e.service.IssueCertificate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = issued.Filename
			}
			if err := os.WriteFile(path, issued.PDF, 0o644); err != nil {
				return fmt.Errorf("write certificate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(issued.PDF))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: cybercore_cert_{name}.pdf)")

	return cmd
}
