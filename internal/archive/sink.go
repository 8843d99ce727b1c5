package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"carehome/internal/blob"
	"carehome/pkg/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPrefix is the key prefix archives are written under.
const DefaultPrefix = "archives"

// BlobSink encodes archive records and stores each as a new object keyed
// <prefix>/<resident id>/<uuid>.<ext>.
type BlobSink struct {
	store   blob.Store
	encoder Encoder
	prefix  string
	logger  *zap.Logger
	newID   func() string

	lastKey string
}

// SinkOption customises a BlobSink.
type SinkOption func(*BlobSink)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) SinkOption {
	return func(s *BlobSink) { s.prefix = prefix }
}

// WithSinkLogger sets the logger. A nil logger is ignored.
func WithSinkLogger(logger *zap.Logger) SinkOption {
	return func(s *BlobSink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewBlobSink returns a sink writing enc output to store.
func NewBlobSink(store blob.Store, enc Encoder, opts ...SinkOption) *BlobSink {
	s := &BlobSink{
		store:   store,
		encoder: enc,
		prefix:  DefaultPrefix,
		logger:  zap.NewNop(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domain.ArchiveSink = (*BlobSink)(nil)

// WriteArchive encodes rec and stores it. Any failure is returned so the
// discharge can be aborted.
func (s *BlobSink) WriteArchive(ctx context.Context, rec domain.ArchiveRecord) error {
	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, rec); err != nil {
		return err
	}
	key := path.Join(s.prefix, rec.Resident.ID, s.newID()+"."+s.encoder.Extension())
	meta := map[string]string{
		"resident-id":   rec.Resident.ID,
		"discharged-by": rec.DischargedBy,
	}
	if !rec.DischargedAt.IsZero() {
		meta["discharged-at"] = formatTime(rec.DischargedAt)
	}
	info, err := s.store.Put(ctx, key, &buf, blob.PutOptions{ContentType: s.encoder.ContentType(), Metadata: meta})
	if err != nil {
		return fmt.Errorf("store archive: %w", err)
	}
	s.lastKey = info.Key
	s.logger.Info("archive written",
		zap.String("resident_id", rec.Resident.ID),
		zap.String("key", info.Key),
		zap.String("driver", string(s.store.Driver())),
		zap.Int64("size_bytes", info.Size))
	return nil
}

// LastKey returns the key of the most recently written archive.
func (s *BlobSink) LastKey() string { return s.lastKey }

// List returns the stored archives of residentID, or of every resident when
// residentID is empty.
func (s *BlobSink) List(ctx context.Context, residentID string) ([]blob.Info, error) {
	prefix := s.prefix + "/"
	if residentID != "" {
		prefix = path.Join(s.prefix, residentID) + "/"
	}
	return s.store.List(ctx, prefix)
}
