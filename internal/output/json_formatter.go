package output

import "encoding/json"

// JSONFormatter emits the result set as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(rs *ResultSet) ([]byte, error) {
	return json.MarshalIndent(rs, "", "  ")
}
