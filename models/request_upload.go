package models

// DefaultCommitMessage is used when the caller leaves the commit message empty.
const DefaultCommitMessage = "Upload from ComfyUI"

// UploadRequest carries the inputs of a single upload invocation.
// It has no identity beyond the call and is never persisted.
type UploadRequest struct {
	// Token is the Hub access token. Required.
	Token string `json:"hf_token"`

	// RepoID names the destination repository in "owner/name" form.
	RepoID string `json:"repo_id"`

	// SourcePath is a local file or directory. Empty means the configured
	// output directory.
	SourcePath string `json:"model_path"`

	// PathInRepo is the destination prefix inside the repository.
	PathInRepo string `json:"path_in_repo"`

	// Kind selects the upload path.
	Kind ModelKind `json:"model_type"`

	// CommitMessage is the summary of the commit created on the Hub.
	CommitMessage string `json:"commit_message"`

	// CreateModelCard toggles card generation. Nil means "use the default",
	// which is true.
	CreateModelCard *bool `json:"create_model_card,omitempty"`

	// Preview is an optional image embedded into the model card.
	Preview *ImageBatch `json:"images,omitempty"`
}

// WantsModelCard reports whether a model card should be generated.
func (r UploadRequest) WantsModelCard() bool {
	return r.CreateModelCard == nil || *r.CreateModelCard
}

// Message returns the commit message, falling back to [DefaultCommitMessage].
func (r UploadRequest) Message() string {
	if r.CommitMessage == "" {
		return DefaultCommitMessage
	}
	return r.CommitMessage
}
