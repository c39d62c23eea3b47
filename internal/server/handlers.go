package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/contextpack/contextpack/pkg/buildinfo"
	"github.com/contextpack/contextpack/pkg/cache"
	"github.com/contextpack/contextpack/pkg/discover"
	"github.com/contextpack/contextpack/pkg/errors"
	"github.com/contextpack/contextpack/pkg/pack"
)

// maxRequestBody caps pack request bodies at 50 MiB.
const maxRequestBody = 50 << 20

// handleHealth reports liveness and the running version.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handlePack runs the packing engine over the files in the request body.
// Identical request bodies are served from the cache.
func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	var req pack.Request
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if err := validatePackRequest(req); err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.RequestKey("pack", body)
	if cached, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		s.logger.Debug("pack cache hit", "key", key)
		writeRawJSON(w, http.StatusOK, cached)
		return
	}

	resp := pack.Build(req)
	out, err := json.Marshal(resp)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode response"))
		return
	}
	if err := s.cache.Set(r.Context(), key, out, s.ttl); err != nil {
		s.logger.Warn("pack cache store failed", "err", err)
	}
	writeRawJSON(w, http.StatusOK, out)
}

// validatePackRequest checks the decoded request before it reaches the engine.
func validatePackRequest(req pack.Request) error {
	if err := errors.ValidatePackCount(req.PackCount); err != nil {
		return err
	}
	if err := errors.ValidateOutputFormat(string(req.Format), func(s string) bool {
		_, ok := pack.ParseFormat(s)
		return ok
	}); err != nil {
		return err
	}
	for _, f := range req.Files {
		if err := errors.ValidateFilePath(f.Path); err != nil {
			return err
		}
	}
	return nil
}

// treeResponse is the payload of the tree endpoint.
type treeResponse struct {
	Path  string               `json:"path"`
	Nodes []*discover.FileNode `json:"nodes"`
}

// handleTree lists the file tree under the configured root directory.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	if s.root == "" {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "tree endpoint is not configured"))
		return
	}

	rel := strings.Trim(r.URL.Query().Get("path"), "/")
	if err := errors.ValidateTreePath(rel); err != nil {
		s.writeError(w, err)
		return
	}

	dir := filepath.Join(s.root, filepath.FromSlash(rel))
	nodes, err := discover.Walk(dir, discover.Options{RespectGitignore: true})
	if err != nil {
		if os.IsNotExist(err) {
			s.writeError(w, errors.New(errors.ErrCodeFileNotFound, "path not found: %s", rel))
			return
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "walk %s", rel))
		return
	}
	writeJSON(w, http.StatusOK, treeResponse{Path: rel, Nodes: nodes})
}

// errorResponse is the JSON envelope for all error replies.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError maps a structured error to an HTTP status and JSON envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPackCount, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
