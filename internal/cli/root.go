package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"saif-rejection-agent/internal/common/config"
	"saif-rejection-agent/internal/common/errors"
	"saif-rejection-agent/internal/common/logger"
	"saif-rejection-agent/internal/prompt"
	"saif-rejection-agent/internal/rejection"

	"github.com/spf13/cobra"
)

const (
	bannerWidth        = 60
	interactiveBanner  = "SAIF Rejection Email Generator - Interactive Mode"
	generatedBanner    = "GENERATED REJECTION EMAIL"
	rootExampleCommand = `  Show example emails:
    rejection-agent --examples

  Interactive mode:
    rejection-agent --interactive

  Command line mode:
    rejection-agent --company "Acme AI" --contact "founder@acme.ai" \
        --description "AI productivity tool" --reason not_ai_safety`
)

type options struct {
	examples    bool
	interactive bool
	listReasons bool
	company     string
	contact     string
	founders    string
	description string
	reasons     []string
	configPath  string
	logLevel    string
}

func Execute() error {
	return NewRoot().Execute()
}

var newDriver = func(out io.Writer) prompt.Driver {
	return prompt.NewSurveyDriver(out)
}

func NewRoot() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rejection-agent",
		Short:         "Generate SAIF application rejection emails",
		Example:       rootExampleCommand,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.BoolVar(&opts.examples, "examples", false, "Show example rejection emails")
	flags.BoolVar(&opts.interactive, "interactive", false, "Run in interactive mode")
	flags.BoolVar(&opts.listReasons, "list-reasons", false, "List the rejection reason catalog")
	flags.StringVar(&opts.company, "company", "", "Company name")
	flags.StringVar(&opts.contact, "contact", "", "Contact email")
	flags.StringVar(&opts.founders, "founders", "", "Founder name(s)")
	flags.StringVar(&opts.description, "description", "", "Company description")
	flags.StringArrayVar(&opts.reasons, "reason", nil, "Rejection reason tag (repeatable, first one is used)")

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a config file (default: configs/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	return root
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewZapAdapter(
		logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()),
	).WithFields(map[string]interface{}{"component": "cli"})

	out := cmd.OutOrStdout()

	switch {
	case opts.examples:
		log.Debug("printing reference examples", nil)
		return rejection.WriteExamples(out)

	case opts.interactive:
		return runInteractive(cmd.Context(), out, log)

	case opts.listReasons:
		return rejection.WriteCatalog(out)

	case opts.company != "" && opts.description != "":
		app := rejection.NewApplication(opts.company, opts.contact, opts.founders, opts.description, opts.reasons)
		return printEmail(out, app, log)

	default:
		return cmd.Help()
	}
}

func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errors.NewConfigInvalidError(err.Error())
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
			cfg.Logging.Level = opts.logLevel
		default:
			return nil, errors.NewConfigInvalidError(fmt.Sprintf("unknown log level %q", opts.logLevel))
		}
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, out io.Writer, log logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", rule, interactiveBanner, rule)

	app, err := prompt.Interview(ctx, newDriver(out))
	if err != nil {
		if stderrors.Is(err, prompt.ErrAborted) {
			log.Info("interactive session aborted", nil)
			return errors.NewPromptAbortedError()
		}
		return fmt.Errorf("interactive session: %w", err)
	}

	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", rule, generatedBanner, rule)
	return printEmail(out, app, log)
}

func printEmail(out io.Writer, app rejection.Application, log logger.Logger) error {
	email := rejection.ComposeEmail(app)
	if _, err := fmt.Fprintln(out, email.String()); err != nil {
		return err
	}

	tag, _ := app.PrimaryReason()
	log.Debug("rejection email composed", map[string]interface{}{
		"company":      app.CompanyName,
		"reasonTag":    tag,
		"usedFallback": email.Feedback.UsedFallback(),
	})
	if email.Feedback.UsedFallback() && tag != "" {
		log.Warn("unknown rejection reason, generic feedback used", map[string]interface{}{
			"reasonTag": tag,
		})
	}
	return nil
}
