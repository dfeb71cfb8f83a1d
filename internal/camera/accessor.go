package camera

import (
	"context"
	"fmt"

	"github.com/aidapov/povctl/internal/params"
)

const (
	subsystemSystem = "system"
	subsystemImage  = "image"
	subsystemVenc   = "venc"
)

// readFields builds {field: true, ...}, the placeholder shape of a get.
func readFields(fields ...string) map[string]any {
	body := make(map[string]any, len(fields))
	for _, f := range fields {
		body[f] = true
	}
	return body
}

// get reads fields of one subsystem and returns the echoed subsystem object.
// A nil object with a nil error means nothing was returned.
func (s *Session) get(ctx context.Context, subsystem string, fields ...string) (map[string]any, error) {
	resp, err := s.Request(ctx, FuncGet, map[string]any{subsystem: readFields(fields...)})
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Object(subsystem), nil
}

// set writes values to one subsystem. It reports true only when every field
// echoed back equals the value sent.
func (s *Session) set(ctx context.Context, subsystem string, values map[string]any) (bool, error) {
	resp, err := s.Request(ctx, FuncSet, map[string]any{subsystem: values})
	if err != nil || resp == nil {
		return false, err
	}

	echoed := resp.Object(subsystem)
	for field, sent := range values {
		if !wireEqual(echoed[field], sent) {
			return false, nil
		}
	}
	return true, nil
}

// wireEqual compares a decoded JSON value with a value we encoded. Types must
// match: the number 1 never equals the string "1".
func wireEqual(echoed, sent any) bool {
	switch want := sent.(type) {
	case int:
		got, ok := params.WireInt(echoed)
		return ok && got == want
	case string:
		got, ok := echoed.(string)
		return ok && got == want
	case bool:
		got, ok := echoed.(bool)
		return ok && got == want
	default:
		return false
	}
}

func (s *Session) invalid(field string, err error) error {
	return s.fail(NewValidationError(fmt.Sprintf("invalid %s", field), err))
}

func getEnum[S ~string](ctx context.Context, s *Session, table *params.Enum[S], field string) (S, bool, error) {
	var zero S
	image, err := s.get(ctx, subsystemImage, field)
	if err != nil || image == nil {
		return zero, false, err
	}
	v, ok := table.Decode(image[field])
	return v, ok, nil
}

func setEnum[S ~string](ctx context.Context, s *Session, table *params.Enum[S], field string, v S) (bool, error) {
	code, err := table.Encode(v)
	if err != nil {
		return false, s.invalid(field, err)
	}
	return s.set(ctx, subsystemImage, map[string]any{field: code})
}

func getString[S ~string](ctx context.Context, s *Session, field string) (S, bool, error) {
	var zero S
	image, err := s.get(ctx, subsystemImage, field)
	if err != nil || image == nil {
		return zero, false, err
	}
	v, ok := image[field].(string)
	return S(v), ok, nil
}

func setString[S ~string](ctx context.Context, s *Session, field string, v S) (bool, error) {
	return s.set(ctx, subsystemImage, map[string]any{field: string(v)})
}

func (s *Session) getInt(ctx context.Context, field string) (int, bool, error) {
	image, err := s.get(ctx, subsystemImage, field)
	if err != nil || image == nil {
		return 0, false, err
	}
	v, ok := params.WireInt(image[field])
	return v, ok, nil
}

// setInt checks r before sending; only enforced ranges can reject a value.
func (s *Session) setInt(ctx context.Context, r params.Range, v int) (bool, error) {
	if err := r.Check(v); err != nil {
		return false, s.invalid(r.Field, err)
	}
	return s.set(ctx, subsystemImage, map[string]any{r.Field: v})
}

// getBool treats a missing field as false.
func (s *Session) getBool(ctx context.Context, field string) (bool, error) {
	v, _, err := s.lookupBool(ctx, field)
	return v, err
}

// lookupBool also reports whether the camera returned the field at all.
func (s *Session) lookupBool(ctx context.Context, field string) (bool, bool, error) {
	image, err := s.get(ctx, subsystemImage, field)
	if err != nil || image == nil {
		return false, false, err
	}
	raw, ok := image[field]
	if !ok || raw == nil {
		return false, false, nil
	}
	return params.DecodeBool(raw), true, nil
}

func (s *Session) setBool(ctx context.Context, field string, enabled bool) (bool, error) {
	return s.set(ctx, subsystemImage, map[string]any{field: params.EncodeBool(enabled)})
}
