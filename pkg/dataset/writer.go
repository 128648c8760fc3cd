package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// WriteResponse writes one response file named by the query id, one
// result identifier per line, in the response's sort order.
func WriteResponse(directory string, response index.Response) error {
	name := fmt.Sprintf("response-%05d.txt", response.Query.ID)
	f, err := os.Create(filepath.Join(directory, name))
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "create response %s", name)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, result := range response.Results {
		if _, err := fmt.Fprintln(w, result.Record.ID); err != nil {
			return err
		}
	}
	return nil
}
