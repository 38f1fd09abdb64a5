// Package source loads protocol adapter types from the management API or a file.
package source

//go:generate mockgen -source=fetcher.go -destination=fetcher_mock.go -package=source

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/pkg/schema"
)

// Fetcher loads the adapter types document.
type Fetcher interface {
	// Fetch returns the adapter types. It must honor ctx cancellation.
	Fetch(ctx context.Context) (*schema.AdapterTypeList, error)
}

// FileFetcher reads the adapter types document from disk.
type FileFetcher struct {
	path string
}

// NewFileFetcher creates a FileFetcher for path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

// Fetch reads and validates the file.
func (f *FileFetcher) Fetch(ctx context.Context) (*schema.AdapterTypeList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read adapter types %s", f.path)
	}

	return Decode(data, f.path)
}
