package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/MKhiriev/comfy-hf-uploader/internal/utils"
)

const (
	uploadModeRegular = "regular"
	uploadModeLFS     = "lfs"

	// sampleSize is the number of leading bytes sent to the preupload
	// endpoint so the Hub can sniff binary content.
	sampleSize = 512

	// preuploadChunkSize bounds the number of files per preupload call.
	preuploadChunkSize = 256

	ndjsonContentType = "application/x-ndjson"
)

// commitOperation is one file added by a commit. The content comes either
// from localPath or, for generated files, from content.
type commitOperation struct {
	pathInRepo string
	localPath  string
	content    []byte
	size       int64

	uploadMode   string
	shouldIgnore bool
	oid          string
}

func newFileOperation(localPath, pathInRepo string) (*commitOperation, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", localPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", localPath)
	}

	return &commitOperation{pathInRepo: pathInRepo, localPath: localPath, size: info.Size()}, nil
}

func newContentOperation(pathInRepo string, content []byte) *commitOperation {
	return &commitOperation{pathInRepo: pathInRepo, content: content, size: int64(len(content))}
}

func (op *commitOperation) open() (io.ReadCloser, error) {
	if op.localPath == "" {
		return io.NopCloser(bytes.NewReader(op.content)), nil
	}
	return os.Open(op.localPath)
}

func (op *commitOperation) readAll() ([]byte, error) {
	if op.localPath == "" {
		return op.content, nil
	}
	return os.ReadFile(op.localPath)
}

func (op *commitOperation) sample() ([]byte, error) {
	rc, err := op.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(rc, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// sha256 fills op.oid, streaming local files instead of loading them.
func (op *commitOperation) sha256() error {
	if op.oid != "" {
		return nil
	}
	if op.localPath == "" {
		op.oid = utils.SHA256Hex(op.content)
		return nil
	}

	oid, size, err := utils.SHA256File(op.localPath)
	if err != nil {
		return err
	}
	op.oid, op.size = oid, size
	return nil
}

type preuploadFile struct {
	Path   string `json:"path"`
	Sample string `json:"sample"`
	Size   int64  `json:"size"`
}

type preuploadRequest struct {
	Files []preuploadFile `json:"files"`
}

type preuploadResponse struct {
	Files []struct {
		Path         string `json:"path"`
		UploadMode   string `json:"uploadMode"`
		ShouldIgnore bool   `json:"shouldIgnore"`
	} `json:"files"`
}

type commitResponse struct {
	CommitURL string `json:"commitUrl"`
	CommitOID string `json:"commitOid"`
}

type ndjsonLine struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type commitHeader struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type commitFile struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
}

type commitLFSFile struct {
	Path string `json:"path"`
	Algo string `json:"algo"`
	OID  string `json:"oid"`
}

// commit runs the whole commit flow: classify files, push LFS objects, then
// record every operation in one commit on the configured revision.
func (h *httpHubAdapter) commit(ctx context.Context, token, repoID, message string, ops []*commitOperation) (commitResponse, error) {
	if err := h.preupload(ctx, token, repoID, ops); err != nil {
		return commitResponse{}, fmt.Errorf("preupload: %w", err)
	}

	kept := ops[:0:0]
	var lfsOps []*commitOperation
	for _, op := range ops {
		if op.shouldIgnore {
			h.logger.Debug().Str("path", op.pathInRepo).Msg("file ignored by hub")
			continue
		}
		kept = append(kept, op)
		if op.uploadMode == uploadModeLFS {
			lfsOps = append(lfsOps, op)
		}
	}

	if len(lfsOps) > 0 {
		if err := h.uploadLFS(ctx, token, repoID, lfsOps); err != nil {
			return commitResponse{}, err
		}
	}

	body, err := buildCommitPayload(message, kept)
	if err != nil {
		return commitResponse{}, err
	}

	var result commitResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", ndjsonContentType).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/api/models/%s/commit/%s", repoID, url.PathEscape(h.revision)))
	if err != nil {
		return commitResponse{}, fmt.Errorf("commit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return commitResponse{}, err
	}

	h.logger.Debug().
		Str("repo_id", repoID).
		Str("commit", result.CommitOID).
		Int("files", len(kept)).
		Int("lfs_files", len(lfsOps)).
		Msg("commit created")

	return result, nil
}

// preupload asks the Hub how each file must be transferred and whether it
// is ignored by the repository's .gitignore.
func (h *httpHubAdapter) preupload(ctx context.Context, token, repoID string, ops []*commitOperation) error {
	for start := 0; start < len(ops); start += preuploadChunkSize {
		end := min(start+preuploadChunkSize, len(ops))
		chunk := ops[start:end]

		payload := preuploadRequest{Files: make([]preuploadFile, 0, len(chunk))}
		byPath := make(map[string]*commitOperation, len(chunk))
		for _, op := range chunk {
			sample, err := op.sample()
			if err != nil {
				return fmt.Errorf("read sample of %q: %w", op.pathInRepo, err)
			}
			payload.Files = append(payload.Files, preuploadFile{
				Path:   op.pathInRepo,
				Sample: base64.StdEncoding.EncodeToString(sample),
				Size:   op.size,
			})
			byPath[op.pathInRepo] = op
		}

		var result preuploadResponse
		resp, err := h.client.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			SetResult(&result).
			Post(fmt.Sprintf("/api/models/%s/preupload/%s", repoID, url.PathEscape(h.revision)))
		if err != nil {
			return fmt.Errorf("preupload request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		for _, f := range result.Files {
			op, ok := byPath[f.Path]
			if !ok {
				continue
			}
			op.uploadMode = f.UploadMode
			op.shouldIgnore = f.ShouldIgnore
		}
	}

	for _, op := range ops {
		if op.uploadMode == "" {
			op.uploadMode = uploadModeRegular
		}
	}
	return nil
}

// buildCommitPayload encodes the commit as NDJSON: a header line followed by
// one line per file. Regular files are inlined as base64, LFS files are
// referenced by their sha256 oid.
func buildCommitPayload(message string, ops []*commitOperation) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	if err := enc.Encode(ndjsonLine{Key: "header", Value: commitHeader{Summary: message}}); err != nil {
		return nil, err
	}

	for _, op := range ops {
		var line ndjsonLine
		switch op.uploadMode {
		case uploadModeLFS:
			line = ndjsonLine{Key: "lfsFile", Value: commitLFSFile{Path: op.pathInRepo, Algo: "sha256", OID: op.oid}}
		default:
			content, err := op.readAll()
			if err != nil {
				return nil, fmt.Errorf("read %q: %w", op.pathInRepo, err)
			}
			line = ndjsonLine{Key: "file", Value: commitFile{
				Content:  base64.StdEncoding.EncodeToString(content),
				Path:     op.pathInRepo,
				Encoding: "base64",
			}}
		}
		if err := enc.Encode(line); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
