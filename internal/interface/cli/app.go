package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/yanqian/unicafe/internal/domain/menu"
	apperrors "github.com/yanqian/unicafe/pkg/errors"
)

// Exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `Usage: unicafe [--today] <restaurant>
       unicafe --list
       unicafe serve

Options:
    --today  display only today's menu
    --list   list restaurant names

A restaurant literally named "serve" is looked up with: unicafe -- serve
`

type options struct {
	restaurant string
	today      bool
	list       bool
}

// App runs a single command line invocation against the menu service.
type App struct {
	svc    menu.Service
	logger *slog.Logger
}

// NewApp builds the command line front end.
func NewApp(svc menu.Service, logger *slog.Logger) *App {
	return &App{svc: svc, logger: logger.With("component", "cli")}
}

// Run parses args, performs the lookup and renders the result. Nothing is
// written to stdout once an error is detected.
func (a *App) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, usage)
			return ExitOK
		}
		fmt.Fprintf(stderr, "error: %s\n\n%s", err, usage)
		return ExitUsage
	}

	if opts.list {
		restaurants, err := a.svc.Restaurants(ctx)
		if err != nil {
			return a.fail(stderr, err)
		}
		if err := RenderRestaurants(stdout, restaurants); err != nil {
			return a.fail(stderr, err)
		}
		return ExitOK
	}

	res, err := a.svc.Lookup(ctx, menu.Request{Restaurant: opts.restaurant, Today: opts.today})
	if err != nil {
		return a.fail(stderr, err)
	}
	if err := Render(stdout, res); err != nil {
		return a.fail(stderr, err)
	}
	return ExitOK
}

func (a *App) fail(stderr io.Writer, err error) int {
	a.logger.Debug("command failed", "code", apperrors.CodeOf(err), "error", err)
	fmt.Fprintf(stderr, "error: %s\n", err)

	var apiErr *menu.Error
	if errors.As(err, &apiErr) && apiErr.Kind == menu.KindNoSuchRestaurant && len(apiErr.Known) > 0 {
		fmt.Fprintln(stderr, "known restaurants:")
		for _, name := range apiErr.Known {
			fmt.Fprintf(stderr, "    %s\n", name)
		}
	}
	return ExitFailure
}

// parseArgs accepts flags before or after the restaurant name.
func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("unicafe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.today, "today", false, "display only today's menu")
	fs.BoolVar(&opts.list, "list", false, "list restaurant names")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return options{}, err
			}
			return options{}, apperrors.Wrap("invalid_usage", "bad arguments", err)
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch {
	case opts.list && len(positional) > 0:
		return options{}, apperrors.Wrap("invalid_usage", "--list takes no restaurant", nil)
	case opts.list:
		return opts, nil
	case len(positional) == 0:
		return options{}, apperrors.Wrap("invalid_usage", "missing restaurant name", nil)
	case len(positional) > 1:
		return options{}, apperrors.Wrap("invalid_usage", fmt.Sprintf("expected one restaurant name, got %d", len(positional)), nil)
	}
	opts.restaurant = positional[0]
	return opts, nil
}
