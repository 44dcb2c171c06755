package output

import (
	"github.com/goccy/go-json"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/models"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
)

// ToJSON serializes the table. pretty indents the output by two spaces.
func ToJSON(t *table.Table, pretty bool) ([]byte, error) {
	view := models.NewTableView(t)
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
