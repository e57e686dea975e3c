package output

// ConvertOutput is the JSON output of the convert command.
type ConvertOutput struct {
	RunID      string   `json:"run_id"`
	Input      string   `json:"input"`
	Output     string   `json:"output"`
	Rows       int      `json:"rows"`
	Columns    []string `json:"columns"`
	DurationMS int64    `json:"duration_ms"`
}

// PreviewOutput is the JSON output of the preview command.
type PreviewOutput struct {
	Input   string              `json:"input"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Shown   int                 `json:"shown"`
	Total   int                 `json:"total"`
}

// FixtureInfo describes one generated fixture file.
type FixtureInfo struct {
	Name     string `json:"name"`
	FilePath string `json:"file_path"`
	Rows     int    `json:"rows"`
}

// FixtureOutput is the JSON output of the fixtures command.
type FixtureOutput struct {
	Fixtures []FixtureInfo `json:"fixtures"`
}
