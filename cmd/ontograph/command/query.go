package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/internal/repl"
	"github.com/ontograph/ontograph/query"
)

func NewReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drop into an interactive query prompt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHandle(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := getContext()
			defer cancel()

			return repl.Repl(ctx, h)
		},
	}
	return cmd
}

func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"qu"},
		Short:   "Run a query against the graph model and print results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var querystr string
			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("error occured while reading from stdin: %v", err)
				}
				querystr = string(data)
			} else if len(args) == 1 {
				querystr = args[0]
			} else {
				return fmt.Errorf("query accepts only one argument, the query string or nothing for reading from stdin")
			}
			clog.Infof("query:\n%s", querystr)

			h, err := openHandle(cmd)
			if err != nil {
				return err
			}

			res, err := h.Query(querystr)
			if err != nil {
				return err
			}
			capRows(res, viper.GetInt(KeyQueryLimit))
			enc := json.NewEncoder(os.Stdout)
			for _, row := range res.Rows {
				if err := enc.Encode(row); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 100, "limit a number of results")
	viper.BindPFlag(KeyQueryLimit, cmd.Flags().Lookup("limit"))
	return cmd
}

// capRows truncates a result to the configured row cap. A LIMIT clause
// in the query itself still applies first; zero or negative disables
// the cap.
func capRows(res *query.Result, limit int) {
	if limit > 0 && len(res.Rows) > limit {
		res.Rows = res.Rows[:limit]
	}
}
