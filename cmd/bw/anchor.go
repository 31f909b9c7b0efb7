package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/anchor"
)

// Run executes the anchor command.
func (c *AnchorCmd) Run(deps *Dependencies) error {
	doc, err := loadDocument(deps.Ctx, deps.Fetcher, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}
	if err := selectText(doc, c.Text, c.Nth); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}

	a := anchor.NewBuilder().Build(doc)
	if a == nil {
		fmt.Fprintln(deps.Stderr, "error: selection has no text to anchor")
		return bw.Errorf(bw.EINVALID, "selection has no text to anchor")
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}
