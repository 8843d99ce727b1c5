package blob

import (
	"context"
	"fmt"

	"carehome/internal/infra/blob/fs"
	memorystore "carehome/internal/infra/blob/memory"
	infraS3 "carehome/internal/infra/blob/s3"
)

// S3Config re-exports the S3 backend configuration.
type S3Config = infraS3.Config

// Options selects and configures a backend.
type Options struct {
	Driver Driver
	Root   string
	S3     S3Config
}

// Open constructs the store named by opts.Driver. An empty driver means fs.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverFilesystem:
		return fs.New(opts.Root)
	case DriverS3:
		return infraS3.New(ctx, opts.S3)
	case DriverMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", opts.Driver)
	}
}
