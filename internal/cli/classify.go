package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/enumkit/enumkit/internal/dataset"
	"github.com/enumkit/enumkit/pkg/linq"
)

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Print the source kind and iterable tag of every document in FILE",
		Args:  badArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.classify(args[0])
		},
	}
}

func (a *app) classify(name string) error {
	docs, err := dataset.Loader{In: a.in}.Load(name)
	if err != nil {
		return err
	}
	a.log.Info().Int("documents", len(docs)).Msg("classifying")

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tKIND\tTAG\tCOUNT")
	for _, doc := range docs {
		e := linq.From(doc.Value)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", doc, doc.Kind(), e, e.Count())
	}
	return tw.Flush()
}
