package supabase

import (
	"context"
	"encoding/json"

	"authscreen/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BucketParams holds dependencies for opening the session bucket.
type BucketParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

// NewBucket opens the configured session bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Supabase.SessionBucket)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open session bucket %q", params.Config.Supabase.SessionBucket)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// sessionStore keeps the current session as one JSON object.
type sessionStore struct {
	bucket *blob.Bucket
	key    string
}

func newSessionStore(bucket *blob.Bucket, key string) *sessionStore {
	return &sessionStore{bucket: bucket, key: key}
}

// load returns nil when nothing is stored.
func (s *sessionStore) load(ctx context.Context) (*sessionModel, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read stored session")
	}

	var session sessionModel
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored session")
	}

	return &session, nil
}

func (s *sessionStore) save(ctx context.Context, session *sessionModel) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

func (s *sessionStore) remove(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, s.key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to remove stored session")
	}

	return nil
}
