package runtime

import (
	"fmt"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// decodeCollection converts untyped records into T using the json tags of T.
// A record that does not fit T is reported as a fetch failure: the source sent bad data.
func decodeCollection[T any](kind domain.ResourceKind, filter domain.Filter, records []domain.Record) ([]T, error) {
	out := make([]T, 0, len(records))

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}

	raw := make([]map[string]any, len(records))
	for i, r := range records {
		raw[i] = r
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, &domain.FetchError{Kind: kind, Filter: filter, Err: fmt.Errorf("decode: %w", err)}
	}
	return out, nil
}
