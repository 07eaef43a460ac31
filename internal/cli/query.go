package cli

import (
	"github.com/spf13/cobra"

	"github.com/enumkit/enumkit/internal/dataset"
	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/linq"
)

// Terminal operators of the query command.
const (
	opList  = "list"
	opCount = "count"
	opAny   = "any"
	opFirst = "first"
	opLast  = "last"
)

type queryOptions struct {
	union    []string
	skip     int
	take     int
	distinct bool
	reverse  bool
	foldCase bool
	op       string
}

func (a *app) queryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query [FILE...]",
		Short: "Run a query over the elements of the given documents",
		Long: `query concatenates the elements of every document in FILE, or of stdin when FILE is
omitted or '-', and runs them through the pipeline:

  union -> distinct -> reverse -> skip -> take -> terminal operator

Values are compared by value for scalars and by reference for sequences and mappings.`,
		Aliases: []string{"q"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.union, "union", nil, "union with the elements of another document file (repeatable)")
	flags.IntVar(&opts.skip, "skip", 0, "bypass the first N elements")
	flags.IntVar(&opts.take, "take", -1, "keep at most N elements, negative keeps all")
	flags.BoolVar(&opts.distinct, "distinct", false, "drop repeated elements")
	flags.BoolVar(&opts.reverse, "reverse", false, "reverse the element order")
	flags.BoolVar(&opts.foldCase, "fold-case", false, "compare strings case-insensitively in union and distinct")
	flags.StringVar(&opts.op, "op", opList, "terminal operator: list, count, any, first or last")
	flags.StringP(flagOutput, "o", string(dataset.JSON), "output format: json or yaml")
	return cmd
}

func (a *app) query(opts queryOptions, files []string) error {
	format, err := dataset.ParseFormat(a.config.GetString(flagOutput))
	if err != nil {
		return ErrBadRequest.Wrap(err)
	}

	loader := dataset.Loader{In: a.in}
	if len(files) == 0 {
		files = []string{dataset.Stdin}
	}
	docs, err := loader.Load(files...)
	if err != nil {
		return err
	}

	var cmp compare.Comparer[any]
	if opts.foldCase {
		cmp = foldCase()
	}

	q := concatAll(docs)
	for _, name := range opts.union {
		other, err := loader.Load(name)
		if err != nil {
			return err
		}
		q = q.Union(concatAll(other), cmp)
	}
	if opts.distinct {
		q = q.Distinct(cmp)
	}
	if opts.reverse {
		q = q.Reverse()
	}
	q = q.Skip(opts.skip)
	if 0 <= opts.take {
		q = q.Take(opts.take)
	}

	a.log.Info().
		Int("documents", len(docs)).
		Strs("union", opts.union).
		Str("op", opts.op).
		Msg("running query")

	result, err := terminal(q, opts.op)
	if err != nil {
		return err
	}
	return dataset.Encode(a.out, format, result)
}

// concatAll chains the documents into one sequence. No documents make an empty sequence.
func concatAll(docs []dataset.Document) linq.Enumerable[any] {
	q := linq.Empty[any]()
	for _, doc := range docs {
		q = q.Concat(linq.From(doc.Value))
	}
	return q
}

func terminal(q linq.Enumerable[any], op string) (any, error) {
	switch op {
	case opList:
		return q.ToSlice(), nil
	case opCount:
		return q.Count(), nil
	case opAny:
		return q.Any(), nil
	case opFirst:
		v, ok := q.First()
		if !ok {
			return nil, errorkit.ErrEmptyCollection.F("first of an empty result")
		}
		return v, nil
	case opLast:
		v, ok := q.Last()
		if !ok {
			return nil, errorkit.ErrEmptyCollection.F("last of an empty result")
		}
		return v, nil
	default:
		return nil, ErrBadRequest.F("unknown operator %q", op)
	}
}

// foldCase compares strings with Unicode case folding and everything else with the default comparer.
func foldCase() compare.Comparer[any] {
	fold, def := compare.FoldString(), compare.Default[any]()
	return compare.Func(
		func(a, b any) bool {
			sa, okA := a.(string)
			sb, okB := b.(string)
			if okA && okB {
				return fold.Equal(sa, sb)
			}
			return def.Equal(a, b)
		},
		func(v any) uint64 {
			if s, ok := v.(string); ok {
				return fold.Hash(s)
			}
			return def.Hash(v)
		},
	)
}
