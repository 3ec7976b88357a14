package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	fuzzydigest "github.com/alexezh/shadow-sub002"
)

func runCompare(args []string) error {
	flags := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	ignoreLength := flags.Bool("ignore-length", false, "drop the length term from the distance")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flags.NArg() != 2 {
		return errors.New("compare: need exactly two files or digest strings")
	}

	a, err := digestArg(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Arg(0), err)
	}
	b, err := digestArg(flags.Arg(1))
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Arg(1), err)
	}

	var opts []fuzzydigest.DistanceOption
	if *ignoreLength {
		opts = append(opts, fuzzydigest.IgnoreLength())
	}
	fmt.Println(fuzzydigest.Distance(a, b, opts...))
	return nil
}

// digestArg treats arg as a digest string when it parses as one, and as
// a file path otherwise.
func digestArg(arg string) (fuzzydigest.Digest, error) {
	if d, err := fuzzydigest.ParseDigest(arg); err == nil {
		return d, nil
	}
	return digestFile(arg)
}
