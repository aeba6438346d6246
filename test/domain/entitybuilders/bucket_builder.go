//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/scoopforge/bucketsync/internal/domain/entities"
)

// BucketBuilder helps create test buckets with a fluent interface.
type BucketBuilder struct {
	*testkit.BaseBuilder
	name string
	url  string
}

// NewBucketBuilder creates a new bucket builder with sensible defaults.
func NewBucketBuilder() *BucketBuilder {
	return &BucketBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-bucket",
		url:         "https://example.com/test-bucket.git",
	}
}

// WithName sets the bucket name.
func (b *BucketBuilder) WithName(name string) *BucketBuilder {
	b.name = name
	return b
}

// WithURL sets the bucket clone URL.
func (b *BucketBuilder) WithURL(url string) *BucketBuilder {
	b.url = url
	return b
}

// Build creates the bucket (satisfies testkit.Builder interface).
func (b *BucketBuilder) Build() interface{} {
	return b.BuildBucket()
}

// BuildBucket creates the bucket with a concrete return type.
func (b *BucketBuilder) BuildBucket() entities.Bucket {
	return entities.Bucket{
		Name: b.name,
		URL:  b.url,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *BucketBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-bucket"
	b.url = "https://example.com/test-bucket.git"
	return b
}

// Clone creates a deep copy of the BucketBuilder.
func (b *BucketBuilder) Clone() testkit.Builder {
	return &BucketBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		url:         b.url,
	}
}
