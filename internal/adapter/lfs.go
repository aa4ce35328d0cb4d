package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const (
	lfsContentType = "application/vnd.git-lfs+json"

	// lfsBatchSize bounds the number of objects per batch request.
	lfsBatchSize = 256

	// lfsChunkSizeHeader is set by the Hub on upload actions that expect a
	// multipart transfer.
	lfsChunkSizeHeader = "chunk_size"
)

type lfsObject struct {
	OID  string `json:"oid"`
	Size int64  `json:"size"`
}

type lfsBatchRequest struct {
	Operation string      `json:"operation"`
	Transfers []string    `json:"transfers"`
	Objects   []lfsObject `json:"objects"`
	HashAlgo  string      `json:"hash_algo"`
	Ref       *lfsRef     `json:"ref,omitempty"`
}

type lfsRef struct {
	Name string `json:"name"`
}

type lfsAction struct {
	Href   string            `json:"href"`
	Header map[string]string `json:"header"`
}

type lfsBatchObject struct {
	OID     string `json:"oid"`
	Size    int64  `json:"size"`
	Actions *struct {
		Upload *lfsAction `json:"upload"`
		Verify *lfsAction `json:"verify"`
	} `json:"actions"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type lfsBatchResponse struct {
	Transfer string           `json:"transfer"`
	Objects  []lfsBatchObject `json:"objects"`
}

// uploadLFS hashes the given operations and pushes every object the Hub
// does not already store, using the git-lfs "basic" transfer.
func (h *httpHubAdapter) uploadLFS(ctx context.Context, token, repoID string, ops []*commitOperation) error {
	byOID := make(map[string]*commitOperation, len(ops))
	objects := make([]lfsObject, 0, len(ops))
	for _, op := range ops {
		if err := op.sha256(); err != nil {
			return fmt.Errorf("hash %q: %w", op.pathInRepo, err)
		}
		if _, seen := byOID[op.oid]; seen {
			continue
		}
		byOID[op.oid] = op
		objects = append(objects, lfsObject{OID: op.oid, Size: op.size})
	}

	for start := 0; start < len(objects); start += lfsBatchSize {
		end := min(start+lfsBatchSize, len(objects))

		batch, err := h.lfsBatch(ctx, token, repoID, objects[start:end])
		if err != nil {
			return err
		}

		for _, obj := range batch.Objects {
			op, ok := byOID[obj.OID]
			if !ok {
				continue
			}
			if err = h.transferObject(ctx, token, op, obj); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *httpHubAdapter) lfsBatch(ctx context.Context, token, repoID string, objects []lfsObject) (lfsBatchResponse, error) {
	payload := lfsBatchRequest{
		Operation: "upload",
		Transfers: []string{"basic"},
		Objects:   objects,
		HashAlgo:  "sha256",
		Ref:       &lfsRef{Name: h.revision},
	}

	var result lfsBatchResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", lfsContentType).
		SetHeader("Content-Type", lfsContentType).
		SetBody(payload).
		SetResult(&result).
		ForceContentType("application/json").
		Post(fmt.Sprintf("/%s.git/info/lfs/objects/batch", repoID))
	if err != nil {
		return lfsBatchResponse{}, fmt.Errorf("lfs batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return lfsBatchResponse{}, fmt.Errorf("lfs batch: %w", err)
	}

	return result, nil
}

func (h *httpHubAdapter) transferObject(ctx context.Context, token string, op *commitOperation, obj lfsBatchObject) error {
	if obj.Error != nil {
		return fmt.Errorf("%w: %s: %d %s", ErrLFSTransfer, op.pathInRepo, obj.Error.Code, obj.Error.Message)
	}
	if obj.Actions == nil || obj.Actions.Upload == nil {
		h.logger.Debug().Str("path", op.pathInRepo).Str("oid", op.oid).Msg("lfs object already present")
		return nil
	}

	upload := obj.Actions.Upload
	if _, multipart := upload.Header[lfsChunkSizeHeader]; multipart {
		return fmt.Errorf("%w: %s", ErrMultipartNotSupported, op.pathInRepo)
	}

	if err := h.putObject(ctx, op, upload); err != nil {
		return err
	}

	if verify := obj.Actions.Verify; verify != nil {
		if err := h.verifyObject(ctx, token, op, verify); err != nil {
			return err
		}
	}

	h.logger.Debug().Str("path", op.pathInRepo).Str("oid", op.oid).Int64("size", op.size).Msg("lfs object uploaded")
	return nil
}

// putObject streams the object body to the storage href. The raw transport
// is used so that the request carries an exact Content-Length.
func (h *httpHubAdapter) putObject(ctx context.Context, op *commitOperation, action *lfsAction) error {
	body, err := op.open()
	if err != nil {
		return fmt.Errorf("open %q: %w", op.pathInRepo, err)
	}
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, action.Href, body)
	if err != nil {
		return fmt.Errorf("lfs upload request: %w", err)
	}
	req.ContentLength = op.size
	for k, v := range action.Header {
		req.Header.Set(k, v)
	}

	resp, err := h.client.GetClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLFSTransfer, op.pathInRepo, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err = mapStatus(resp.StatusCode, resp.Header, respBody); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLFSTransfer, op.pathInRepo, err)
	}
	return nil
}

func (h *httpHubAdapter) verifyObject(ctx context.Context, token string, op *commitOperation, action *lfsAction) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth("USER", token).
		SetHeaders(action.Header).
		SetHeader("Content-Type", lfsContentType).
		SetBody(lfsObject{OID: op.oid, Size: op.size}).
		Post(action.Href)
	if err != nil {
		return fmt.Errorf("lfs verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: verify %s: %w", ErrLFSTransfer, op.pathInRepo, err)
	}
	return nil
}

