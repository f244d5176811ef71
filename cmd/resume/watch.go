package main

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"
)

// runWatch builds the source, then rebuilds it on every change until the
// context is cancelled (Ctrl+C). Build failures are printed and watching
// continues.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	session, s, err := newSession("watch", args, env, printWatchUsage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	defer func() { _ = session.Converter.Close() }()

	p := newPrinter(env, s.quiet, s.verbose)
	p.settings = s
	if s.verbose {
		p.Settings(s)
	}
	session.Reporter = p

	return withHint(session.Watch(ctx), s)
}
