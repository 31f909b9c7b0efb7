package main

import (
	"fmt"

	"github.com/fwojciec/bw"
)

// Run executes the config get command.
func (c *ConfigGetCmd) Run(deps *Dependencies) error {
	baseURL, err := deps.Config.APIBaseURL(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, baseURL)
	return nil
}

// Run executes the config set command.
func (c *ConfigSetCmd) Run(deps *Dependencies) error {
	if err := deps.Config.SetAPIBaseURL(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "API base URL set to %s\n", c.URL)
	return nil
}
