package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"moderation-diff/core/config"
	"moderation-diff/core/database"
	"moderation-diff/core/logger"
	"moderation-diff/core/reconcile"
	"moderation-diff/core/storage"
	"moderation-diff/feature/moderation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// compareOptions holds the flags of the compare command.
type compareOptions struct {
	request      string
	file         string
	fromStorage  bool
	mode         string
	output       string
	archive      bool
	saveSnapshot bool
}

func newCompareCmd() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show the attachment changes of a moderation request",
		Long: `Reconcile the attachments proposed by a moderation request against the
current document and print added, deleted and changed attachments.

The request is read from the portal database, from a snapshot in object
storage (--from-storage), or from a local YAML or JSON file (--file).
Files that declare "fields" are compared as generic records.

Examples:
  # Compare a request from the database
  compare --request 8a3f1c

  # Compare a stored snapshot and archive the report
  compare --request 8a3f1c --from-storage --archive

  # Compare a local file as if the request were closed
  compare --file request.yaml --mode closed --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.request, "request", "r", "", "Moderation request id")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Local YAML or JSON snapshot file")
	cmd.Flags().BoolVar(&opts.fromStorage, "from-storage", false, "Read the request snapshot from object storage instead of the database")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Override the request mode (open, closed)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "Archive the report to object storage")
	cmd.Flags().BoolVar(&opts.saveSnapshot, "save-snapshot", false, "Store the database snapshot of the request in object storage")
	cmd.MarkFlagsMutuallyExclusive("request", "file")
	cmd.MarkFlagsOneRequired("request", "file")

	return cmd
}

func (o *compareOptions) validate() error {
	if o.output != "table" && o.output != "json" {
		return fmt.Errorf("unsupported output format %q", o.output)
	}
	if o.file != "" && (o.fromStorage || o.archive || o.saveSnapshot) {
		return errors.New("--from-storage, --archive and --save-snapshot require --request")
	}
	if o.fromStorage && o.saveSnapshot {
		return errors.New("--save-snapshot reads from the database and cannot be combined with --from-storage")
	}
	return nil
}

func runCompare(cmd *cobra.Command, opts *compareOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	var override *reconcile.Mode
	if opts.mode != "" {
		m, err := reconcile.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		override = &m
	}

	if opts.file != "" {
		cmp, err := moderation.ReadFile(opts.file)
		if err != nil {
			return err
		}
		result, err := compareWith(cmp, override)
		if err != nil {
			return err
		}
		return writeResult(cmd, opts.output, result)
	}

	return compareRequest(cmd, opts, override)
}

func compareRequest(cmd *cobra.Command, opts *compareOptions, override *reconcile.Mode) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	var db *gorm.DB
	if !opts.fromStorage {
		if db, err = database.Connect(cfg.Database); err != nil {
			return fmt.Errorf("database unavailable (use --from-storage to read snapshots): %w", err)
		}
	}

	svc := moderation.NewService(db, store, cfg.Storage.Bucket, cfg.Moderation, logg)
	snap, err := svc.Load(ctx, opts.request)
	if err != nil {
		return err
	}

	result, err := compareWith(snap, override)
	if err != nil {
		return err
	}

	if opts.saveSnapshot {
		key, err := svc.Store().Save(ctx, snap)
		if err != nil {
			return err
		}
		logg.Info("Saved request snapshot", zap.String("request", opts.request), zap.String("object", key))
	}
	if opts.archive {
		key, err := svc.Archive(ctx, opts.request, result)
		if err != nil {
			return err
		}
		logg.Info("Archived moderation report", zap.String("request", opts.request), zap.String("object", key))
	}

	return writeResult(cmd, opts.output, result)
}

func compareWith(cmp moderation.Comparison, override *reconcile.Mode) (*reconcile.Result, error) {
	mode := cmp.RequestMode()
	if override != nil {
		mode = *override
	}
	return cmp.Compare(mode)
}

func writeResult(cmd *cobra.Command, output string, result *reconcile.Result) error {
	out := cmd.OutOrStdout()
	if output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return moderation.RenderTable(out, result)
}

func init() {
	RootCmd.AddCommand(newCompareCmd())
}
