package inline

import (
	"encoding/json"

	"github.com/mediasan-cli/mediasan/source"
)

// Output is the document emitted in JSON mode. Records carry the derived
// season, episode and kind annotations alongside the wire fields.
type Output struct {
	Query  string           `json:"query"`
	Topics []string         `json:"topics"`
	Result []*source.Record `json:"result"`
}

func asJson(records []*source.Record, topics []string, query string) ([]byte, error) {
	if records == nil {
		records = []*source.Record{}
	}
	if topics == nil {
		topics = []string{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Topics: topics,
		Result: records,
	})
}
