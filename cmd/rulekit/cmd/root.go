package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the rulekit command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rulekit",
		Short: "Validate signup documents and serve the validation API",
		Long: `rulekit checks signup and address documents against the
built-in validation rules and reports every violation at once.

Commands:
  check  - validate a YAML or JSON document
  serve  - run the HTTP validation API`,
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd(), newServeCmd())
	return root
}

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
