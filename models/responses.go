package models

// UploadReport describes the outcome of one upload invocation.
// Model upload and card publishing are independent: a report can carry a
// successful UploadURL together with a non-empty CardError.
type UploadReport struct {
	// RequestID identifies the invocation in logs.
	RequestID string `json:"request_id"`

	RepoID  string `json:"repo_id"`
	RepoURL string `json:"repo_url,omitempty"`

	// SourcePath is the resolved (possibly defaulted) source.
	SourcePath string `json:"source_path"`

	// UploadURL points at the uploaded file or folder on the Hub.
	UploadURL string `json:"upload_url,omitempty"`

	CardCreated bool   `json:"card_created"`
	CardError   string `json:"card_error,omitempty"`
}

// ErrorResponse is the JSON body returned by the node service on failure.
type ErrorResponse struct {
	Error  string        `json:"error"`
	Report *UploadReport `json:"report,omitempty"`
}
