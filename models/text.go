package models

// TextRequest is the body of the text conversion endpoints of the tools
// backend.
type TextRequest struct {
	// Content is the text to convert.
	Content string `json:"content"`
}

// Reachability is the body of the liveness probe endpoint of the shell.
type Reachability struct {
	Reachable bool   `json:"reachable"`
	BaseURL   string `json:"baseURL"`
}
