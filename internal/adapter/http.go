package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/comfy-hf-uploader/internal/config"
	"github.com/MKhiriev/comfy-hf-uploader/internal/logger"
	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
	"github.com/MKhiriev/comfy-hf-uploader/models"
)

// modelCardCommitMessage is used for the commit publishing README.md.
const modelCardCommitMessage = "Upload model card"

type httpHubAdapter struct {
	client *utils.HTTPClient

	endpoint string
	revision string

	logger *logger.Logger
}

// NewHTTPHubAdapter constructs an HTTP/REST implementation of [HubAdapter].
// It normalises and validates hubCfg.Endpoint and configures the underlying
// HTTP client with the resolved base URL and the optional request timeout.
// An empty revision falls back to "main".
//
// Returns an error if hubCfg.Endpoint is empty or cannot be parsed as a
// valid URL.
func NewHTTPHubAdapter(hubCfg config.Hub, logger *logger.Logger) (HubAdapter, error) {
	baseURL, err := normalizeBaseURL(hubCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid hub endpoint: %w", err)
	}

	revision := strings.TrimSpace(hubCfg.Revision)
	if revision == "" {
		revision = "main"
	}

	client := utils.NewHTTPClient().
		WithTimeout(hubCfg.RequestTimeout).
		WithDebugLog(logger.Logger)
	client.SetBaseURL(baseURL)

	return &httpHubAdapter{
		client:   client,
		endpoint: baseURL,
		revision: revision,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type createRepoRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Type         string `json:"type"`
	Private      bool   `json:"private"`
}

type createRepoResponse struct {
	URL string `json:"url"`
}

// CreateRepo implements [HubAdapter]. It POSTs to /api/repos/create and
// treats 409 Conflict as "repository already exists", returning the canonical
// repository URL in that case.
func (h *httpHubAdapter) CreateRepo(ctx context.Context, token, repoID string) (string, error) {
	owner, name, err := splitRepoID(repoID)
	if err != nil {
		return "", err
	}

	fullID, err := h.resolveRepoID(ctx, token, repoID)
	if err != nil {
		return "", err
	}

	var created createRepoResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(createRepoRequest{Name: name, Organization: owner, Type: "model"}).
		SetResult(&created).
		Post("/api/repos/create")
	if err != nil {
		return "", fmt.Errorf("create repo request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			h.logger.Debug().Str("repo_id", repoID).Msg("repository already exists")
			return h.repoURL(fullID), nil
		}
		return "", err
	}

	if created.URL == "" {
		return h.repoURL(fullID), nil
	}
	return created.URL, nil
}

// UploadFile implements [HubAdapter]. The file is committed at
// req.PathInRepo and its blob URL is returned.
func (h *httpHubAdapter) UploadFile(ctx context.Context, req FileUpload) (string, error) {
	repoID, err := h.resolveRepoID(ctx, req.Token, req.RepoID)
	if err != nil {
		return "", err
	}

	pathInRepo := cleanRepoPath(req.PathInRepo)
	op, err := newFileOperation(req.LocalPath, pathInRepo)
	if err != nil {
		return "", err
	}

	if _, err = h.commit(ctx, req.Token, repoID, req.CommitMessage, []*commitOperation{op}); err != nil {
		return "", err
	}

	return h.blobURL(repoID, pathInRepo), nil
}

// UploadFolder implements [HubAdapter]. Every regular file below
// req.FolderPath is committed under req.PathInRepo; version-control and
// local cache directories are skipped. Returns the tree URL of the folder.
func (h *httpHubAdapter) UploadFolder(ctx context.Context, req FolderUpload) (string, error) {
	repoID, err := h.resolveRepoID(ctx, req.Token, req.RepoID)
	if err != nil {
		return "", err
	}

	pathInRepo := cleanRepoPath(req.PathInRepo)
	ops, err := collectFolder(req.FolderPath, pathInRepo)
	if err != nil {
		return "", err
	}
	if len(ops) == 0 {
		return "", fmt.Errorf("%w: folder %q has no files", ErrEmptyFolder, req.FolderPath)
	}

	h.logger.Debug().
		Str("repo_id", repoID).
		Str("folder", req.FolderPath).
		Int("files", len(ops)).
		Msg("uploading folder")

	if _, err = h.commit(ctx, req.Token, repoID, req.CommitMessage, ops); err != nil {
		return "", err
	}

	return h.treeURL(repoID, pathInRepo), nil
}

// PushModelCard implements [HubAdapter]. README.md and the card assets are
// committed together at the repository root.
func (h *httpHubAdapter) PushModelCard(ctx context.Context, token, repoID string, card models.ModelCard) error {
	repoID, err := h.resolveRepoID(ctx, token, repoID)
	if err != nil {
		return err
	}

	ops := make([]*commitOperation, 0, len(card.Assets)+1)
	ops = append(ops, newContentOperation("README.md", []byte(card.Content)))
	for _, asset := range card.Assets {
		ops = append(ops, newContentOperation(cleanRepoPath(asset.PathInRepo), asset.Content))
	}

	_, err = h.commit(ctx, token, repoID, modelCardCommitMessage, ops)
	return err
}

type whoAmIResponse struct {
	Name string `json:"name"`
}

// resolveRepoID returns repoID in "owner/name" form. A bare name is placed
// in the namespace of the token's user, looked up via /api/whoami-v2.
func (h *httpHubAdapter) resolveRepoID(ctx context.Context, token, repoID string) (string, error) {
	owner, name, err := splitRepoID(repoID)
	if err != nil {
		return "", err
	}
	if owner != "" {
		return repoID, nil
	}

	var who whoAmIResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&who).
		Get("/api/whoami-v2")
	if err != nil {
		return "", fmt.Errorf("whoami request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("resolve namespace of %q: %w", repoID, err)
	}
	if who.Name == "" {
		return "", fmt.Errorf("%w: no namespace for %q", ErrInvalidRepoID, repoID)
	}

	h.logger.Debug().Str("repo_id", repoID).Str("namespace", who.Name).Msg("resolved repo namespace")
	return who.Name + "/" + name, nil
}

func (h *httpHubAdapter) repoURL(repoID string) string {
	return h.endpoint + "/" + repoID
}

func (h *httpHubAdapter) blobURL(repoID, pathInRepo string) string {
	return fmt.Sprintf("%s/%s/blob/%s/%s", h.endpoint, repoID, url.PathEscape(h.revision), pathInRepo)
}

func (h *httpHubAdapter) treeURL(repoID, pathInRepo string) string {
	return fmt.Sprintf("%s/%s/tree/%s/%s", h.endpoint, repoID, url.PathEscape(h.revision), pathInRepo)
}

// splitRepoID splits "owner/name" into its parts. A bare "name" has no owner.
func splitRepoID(repoID string) (owner, name string, err error) {
	parts := strings.Split(repoID, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return "", parts[0], nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoID, repoID)
	}
}

// cleanRepoPath normalises an in-repo path: forward slashes, no leading
// slash, no "." segments. The repository root is the empty string.
func cleanRepoPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}
