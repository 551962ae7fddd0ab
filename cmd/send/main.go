package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/term"

	"github.com/maillist/internal/config"
	"github.com/maillist/internal/contact"
	"github.com/maillist/internal/mailer"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "display summaries instead of sending")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: send [--dry-run] <csv> <template>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()
	if err := run(cfg, flag.Arg(0), flag.Arg(1), *dryRun); err != nil {
		switch {
		case errors.Is(err, mailer.ErrAuth):
			fmt.Fprintln(os.Stderr, "Invalid password")
		case errors.Is(err, fs.ErrNotExist):
			slog.Error("file not found", "err", err)
		default:
			slog.Error("an unexpected error occurred", "err", err)
		}
		os.Exit(1)
	}
}

// run reads the curated list and the template, filters to the target
// country and either reports or sends the batch.
func run(cfg *config.Config, csvPath, tmplPath string, dryRun bool) error {
	rows, err := contact.Read(csvPath)
	if err != nil {
		return err
	}
	tmpl, err := mailer.LoadTemplate(tmplPath)
	if err != nil {
		return err
	}

	mcfg := mailer.Config{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		Sender:  cfg.Sender,
		Subject: cfg.Subject,
		Delay:   cfg.SendDelay,
	}
	msgs := mailer.BuildAll(
		contact.FilterCountry(slices.Values(rows), cfg.TargetCountry),
		tmpl, mcfg,
	)

	sender := mailer.NewSender(mcfg, os.Stdout)
	if dryRun {
		sender.DryRun(msgs)
		return nil
	}

	password, err := promptPassword(cfg.Sender)
	if err != nil {
		return err
	}
	return sender.Send(msgs, cfg.Sender, password)
}

// promptPassword reads the relay credential without echoing it. The
// credential lives only in process memory for the run.
func promptPassword(sender string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", sender)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
