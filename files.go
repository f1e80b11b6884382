package jackalpin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// File is one stored file as returned by listings.
type File struct {
	ID        int64  `json:"id"`
	Name      string `json:"file_name"`
	CID       string `json:"cid"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}

// FileList is one page of files with the total count across all pages.
type FileList struct {
	Files []File `json:"files"`
	Count int    `json:"count"`
}

// UploadResult describes a file accepted by the service.
type UploadResult struct {
	Name   string `json:"name"`
	CID    string `json:"cid"`
	Merkle string `json:"merkle"`
	ID     int64  `json:"id,omitempty"`
}

// FileUpload is one file of a multi-file upload.
type FileUpload struct {
	// Filename names the upload; empty falls back to the literal "file".
	Filename string
	Reader   io.Reader
}

// ListFilesOptions narrows a ListFiles call. Zero-valued fields are
// omitted from the query string.
type ListFilesOptions struct {
	Page  int
	Limit int
	// Name filters the listing by file name.
	Name string
}

func (o *ListFilesOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	return q
}

// ListFiles lists the account's pinned files.
func (c *Client) ListFiles(ctx context.Context, opts *ListFilesOptions) (*FileList, error) {
	var result FileList
	req := &api.Request{Method: http.MethodGet, Path: "/files", Query: opts.query()}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadFile uploads one file. An empty filename is derived from the
// reader when it is an *os.File; otherwise the literal "file" is sent.
func (c *Client) UploadFile(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	if filename == "" {
		if f, ok := r.(*os.File); ok {
			filename = filepath.Base(f.Name())
		}
	}

	req := &api.Request{
		Method: http.MethodPost,
		Path:   "/files",
		Files:  []api.Upload{{Field: "file", Filename: filename, Reader: r}},
	}
	var result UploadResult
	if err := c.api.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadFileFromPath uploads the file at the given path, named by its
// base name.
func (c *Client) UploadFileFromPath(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return c.UploadFile(ctx, f, "")
}

// UploadFiles uploads several files in one request. The server may
// answer with a single object or an array; both are normalized into a
// slice of results.
func (c *Client) UploadFiles(ctx context.Context, files ...FileUpload) ([]UploadResult, error) {
	parts := make([]api.Upload, 0, len(files))
	for _, f := range files {
		parts = append(parts, api.Upload{Field: "files", Filename: f.Filename, Reader: f.Reader})
	}

	var raw json.RawMessage
	req := &api.Request{Method: http.MethodPost, Path: "/v1/files", Files: parts}
	if err := c.api.Do(ctx, req, &raw); err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var results []UploadResult
		if err := json.Unmarshal(raw, &results); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return results, nil
	}

	var single UploadResult
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return []UploadResult{single}, nil
}

// DeleteFile removes a file by id.
func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	return c.api.Do(ctx, &api.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/files/%d", id)}, nil)
}

// CloneFile ingests a file that the service fetches from the given URL.
func (c *Client) CloneFile(ctx context.Context, link string) (*UploadResult, error) {
	body := struct {
		Link string `json:"link"`
	}{Link: link}

	var result UploadResult
	if err := c.api.Do(ctx, &api.Request{Method: http.MethodPost, Path: "/clone", Body: body}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PinByCID pins existing network content by its content identifier.
// The identifier is passed through opaquely; the service validates it.
func (c *Client) PinByCID(ctx context.Context, cid string) error {
	path := fmt.Sprintf("/pin/%s", url.PathEscape(cid))
	return c.api.Do(ctx, &api.Request{Method: http.MethodPost, Path: path}, nil)
}
