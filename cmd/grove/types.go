package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLITerm is a JSON-friendly ontology term representation.
type CLITerm struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	Synonyms  []string `json:"synonyms,omitempty"`
}

// CLIResolution is a JSON-friendly identifier resolution: the queried
// identifier and every target candidate in table order.
type CLIResolution struct {
	Query      string   `json:"query"`
	Candidates []string `json:"candidates"`
}

// CLIIndexSummary reports what one index run wrote to the database.
type CLIIndexSummary struct {
	Database     string  `json:"database"`
	Terms        int     `json:"terms"`
	Annotations  int     `json:"annotations"`
	Housekeeping int     `json:"housekeeping"`
	Mappings     int     `json:"mappings"`
	Elapsed      float64 `json:"elapsed_seconds"`
}
