// Package pagination holds the Relay-style cursor pagination types shared
// by every connection-shaped query, plus a small iterator for walking all
// pages of one.
package pagination

import "context"

// PageInfo is the cursor bookkeeping attached to every connection.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	EndCursor       *string `json:"endCursor"`
	HasPreviousPage *bool   `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
}

// Connection is a page of nodes with its page info.
type Connection[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

// FetchPage retrieves one page: after is the end cursor of the previous
// page, nil for the first.
type FetchPage[T any] func(ctx context.Context, after *string) (*Connection[T], error)

// All walks every page and returns the concatenated nodes. The fetch
// function is called once per page until HasNextPage is false.
func All[T any](ctx context.Context, fetch FetchPage[T]) ([]T, error) {
	var (
		nodes []T
		after *string
	)
	for {
		page, err := fetch(ctx, after)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, page.Nodes...)
		if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor == nil {
			return nodes, nil
		}
		after = page.PageInfo.EndCursor
	}
}
