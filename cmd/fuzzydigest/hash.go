package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

func runHash(args []string) error {
	flags := pflag.NewFlagSet("hash", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("hash: no input files")
	}

	for _, path := range flags.Args() {
		d, err := digestFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s  %s\n", d, path)
	}
	return nil
}
