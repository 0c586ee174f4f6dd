package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
)

// AnnotationCache keeps NLP results keyed by a hash of the analyzed text, so
// identical content does not hit the collaborator twice.
type AnnotationCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewAnnotationCache(r *Redis) *AnnotationCache {
	return &AnnotationCache{
		client: r.Client,
		prefix: "nlp:annotation:",
		ttl:    24 * time.Hour,
	}
}

func (c *AnnotationCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns (nil, nil) on a cache miss.
func (c *AnnotationCache) Get(ctx context.Context, text string) (*domain.Annotation, error) {
	data, err := c.client.Get(ctx, c.key(text)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ann domain.Annotation
	if err := json.Unmarshal(data, &ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

func (c *AnnotationCache) Set(ctx context.Context, text string, ann *domain.Annotation) error {
	b, err := json.Marshal(ann)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(text), b, c.ttl).Err()
}
