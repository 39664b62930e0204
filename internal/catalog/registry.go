package catalog

import (
	"fmt"

	"go.uber.org/zap"
)

// Registry owns one collection per kind.
type Registry struct {
	Tags      *Collection[Tag]
	Tools     *Collection[UsedTool]
	Materials *Collection[UsedMaterial]
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes mutation logs to l. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.Named("catalog")
	return &Registry{
		Tags:      newCollection[Tag](KindTag, logger),
		Tools:     newCollection[UsedTool](KindTool, logger),
		Materials: newCollection[UsedMaterial](KindMaterial, logger),
	}
}

// Counts returns the number of records per kind.
func (r *Registry) Counts() map[Kind]int {
	return map[Kind]int{
		KindTag:      r.Tags.Len(),
		KindTool:     r.Tools.Len(),
		KindMaterial: r.Materials.Len(),
	}
}

// Entries returns every record of kind as an Entry, in insertion order.
func (r *Registry) Entries(kind Kind) ([]Entry, error) {
	switch kind {
	case KindTag:
		return entries(r.Tags), nil
	case KindTool:
		return entries(r.Tools), nil
	case KindMaterial:
		return entries(r.Materials), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// Lookup returns the record of kind with the given id as an Entry.
func (r *Registry) Lookup(kind Kind, id int) (Entry, error) {
	switch kind {
	case KindTag:
		return lookup(r.Tags, id)
	case KindTool:
		return lookup(r.Tools, id)
	case KindMaterial:
		return lookup(r.Materials, id)
	default:
		return Entry{}, fmt.Errorf("unknown kind %q", kind)
	}
}

func entries[T Record](c *Collection[T]) []Entry {
	out := make([]Entry, 0, c.Len())
	for rec := range c.List() {
		out = append(out, rec.entry())
	}
	return out
}

func lookup[T Record](c *Collection[T], id int) (Entry, error) {
	rec, err := c.Get(id)
	if err != nil {
		return Entry{}, err
	}
	return rec.entry(), nil
}
