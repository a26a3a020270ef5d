package modelclient

import (
	"context"
	"io"
)

// IModelClient is the interface for the hosted model endpoint.
//
//go:generate mockery --name IModelClient
type IModelClient interface {
	// Parse sends one feature-tagged parse request and returns the structured response.
	Parse(ctx context.Context, req ParseRequest) (*ParseResponse, error)

	// ChatStream forwards a conversation to the model endpoint and returns the
	// plain-text reply stream. The caller owns closing the reader.
	ChatStream(ctx context.Context, req ChatRequest) (io.ReadCloser, error)
}
