package svgbuild

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// DecodeOptions decodes keyword style options into one of the option
// structs of this package, e.g.
//
//	opts, err := DecodeOptions[RectOptions](map[string]any{
//		"fill":        "#ccc",
//		"stroke_width": 2,
//		"link_target": "/details",
//	})
//
// Keys use the snake_case names of the mapstructure tags. Values are
// weakly typed, so "2" decodes into a float64 field. Unknown keys are
// rejected.
func DecodeOptions[T any](raw map[string]any) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, errors.Wrap(err, "DecodeOptions decoder setup error")
	}

	if err := decoder.Decode(raw); err != nil {
		return out, errors.Wrapf(err, "DecodeOptions error for %T", out)
	}
	return out, nil
}

// DecodePoints decodes a list of {"x": .., "y": ..} maps or [x, y] pairs
// into polygon points.
func DecodePoints(raw []any) ([]Point, error) {
	points := make([]Point, 0, len(raw))
	for i, item := range raw {
		if pair, ok := item.([]any); ok {
			if len(pair) != 2 {
				return nil, errors.Errorf("DecodePoints error: point %d has %d coordinates", i, len(pair))
			}
			item = map[string]any{"x": pair[0], "y": pair[1]}
		}

		m, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Errorf("DecodePoints error: point %d is a %T", i, item)
		}
		p, err := DecodeOptions[Point](m)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodePoints error at point %d", i)
		}
		points = append(points, p)
	}
	return points, nil
}
