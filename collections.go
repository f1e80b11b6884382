package jackalpin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// Collection is one collection as returned by listings. Collections are
// identified by both a numeric id and a content identifier.
type Collection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	CID  string `json:"cid"`
}

// CollectionList is one page of collections with the total count across
// all pages.
type CollectionList struct {
	Collections []Collection `json:"collections"`
	Count       int          `json:"count"`
}

// CollectionDetail is one collection's contents: its files (paged, with
// the total file count) and the collections nested directly under it.
type CollectionDetail struct {
	Name        string       `json:"name"`
	CID         string       `json:"cid"`
	Files       []File       `json:"files"`
	Collections []Collection `json:"collections"`
	Count       int          `json:"count"`
}

// ListCollectionsOptions narrows a ListCollections call. Zero-valued
// fields are omitted from the query string.
type ListCollectionsOptions struct {
	Page  int
	Limit int
	// Name filters the listing by collection name.
	Name string
}

func (o *ListCollectionsOptions) query() url.Values {
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

// GetCollectionOptions pages through the files inside a collection.
// Zero-valued fields are omitted from the query string.
type GetCollectionOptions struct {
	Page  int
	Limit int
}

func (o *GetCollectionOptions) query() url.Values {
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
	return q
}

// CreateCollection creates a named collection and returns its id.
func (c *Client) CreateCollection(ctx context.Context, name string) (int64, error) {
	path := fmt.Sprintf("/collections/%s", url.PathEscape(name))
	var result struct {
		ID int64 `json:"id"`
	}
	if err := c.api.Do(ctx, &api.Request{Method: http.MethodPost, Path: path}, &result); err != nil {
		return 0, err
	}
	return result.ID, nil
}

// ListCollections lists the account's collections.
func (c *Client) ListCollections(ctx context.Context, opts *ListCollectionsOptions) (*CollectionList, error) {
	var result CollectionList
	req := &api.Request{Method: http.MethodGet, Path: "/collections", Query: opts.query()}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCollection returns a collection's contents by id.
func (c *Client) GetCollection(ctx context.Context, id int64, opts *GetCollectionOptions) (*CollectionDetail, error) {
	var result CollectionDetail
	req := &api.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/collections/%d", id),
		Query:  opts.query(),
	}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCollection deletes a collection by id.
func (c *Client) DeleteCollection(ctx context.Context, id int64) error {
	return c.api.Do(ctx, &api.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/collections/%d", id)}, nil)
}

// AddFileToCollection places a file in a collection.
func (c *Client) AddFileToCollection(ctx context.Context, collectionID, fileID int64) error {
	path := fmt.Sprintf("/collections/%d/%d", collectionID, fileID)
	return c.api.Do(ctx, &api.Request{Method: http.MethodPut, Path: path}, nil)
}

// RemoveFileFromCollection takes a file out of a collection. The file
// itself is not deleted.
func (c *Client) RemoveFileFromCollection(ctx context.Context, collectionID, fileID int64) error {
	path := fmt.Sprintf("/collections/%d/%d", collectionID, fileID)
	return c.api.Do(ctx, &api.Request{Method: http.MethodDelete, Path: path}, nil)
}

// NestCollection places the child collection under the parent. Nesting
// is by reference: the child keeps its own id and contents.
func (c *Client) NestCollection(ctx context.Context, parentID, childID int64) error {
	path := fmt.Sprintf("/collections/%d/c/%d", parentID, childID)
	return c.api.Do(ctx, &api.Request{Method: http.MethodPut, Path: path}, nil)
}
