package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontograph/ontograph/query"
)

func testResult(n int) *query.Result {
	res := &query.Result{Columns: []string{"x"}}
	for i := 0; i < n; i++ {
		res.Rows = append(res.Rows, map[string]string{"x": "v"})
	}
	return res
}

func TestCapRows(t *testing.T) {
	res := testResult(5)
	capRows(res, 3)
	require.Len(t, res.Rows, 3)

	res = testResult(2)
	capRows(res, 3)
	require.Len(t, res.Rows, 2)

	res = testResult(2)
	capRows(res, 0)
	require.Len(t, res.Rows, 2)
}

func TestQueryCmdBindsLimit(t *testing.T) {
	cmd := NewQueryCmd()
	f := cmd.Flags().Lookup("limit")
	require.NotNil(t, f)
	require.Equal(t, "100", f.DefValue)
}
