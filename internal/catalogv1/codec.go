package catalogv1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
)

// ParamsFromStruct reads the named request fields as raw parameter strings.
// Strings pass through, numbers are formatted and lists of strings are comma
// joined. Any other value is a ValidationError. Absent and null fields are
// left out.
func ParamsFromStruct(req *structpb.Struct, names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	fields := req.GetFields()
	for _, name := range names {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			out[name] = kind.StringValue
		case *structpb.Value_NumberValue:
			out[name] = strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
		case *structpb.Value_NullValue:
		case *structpb.Value_ListValue:
			parts := make([]string, 0, len(kind.ListValue.GetValues()))
			for _, item := range kind.ListValue.GetValues() {
				s, ok := item.GetKind().(*structpb.Value_StringValue)
				if !ok {
					return nil, apperr.Validation(name, "list items must be strings")
				}
				parts = append(parts, s.StringValue)
			}
			out[name] = strings.Join(parts, ",")
		default:
			return nil, apperr.Validation(name, "must be a string or number")
		}
	}
	return out, nil
}

// ToStruct converts a JSON encodable value, normally an envelope, into a Struct.
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return structpb.NewStruct(m)
}

// StatusError maps a catalog failure onto a gRPC status. Only validation
// failures reveal anything about the cause.
func StatusError(err error) error {
	switch apperr.Classify(err) {
	case apperr.KindValidation:
		return status.Error(codes.InvalidArgument, apperr.PublicMessage(err, envelope.GenericMessage))
	case apperr.KindRepository, apperr.KindDerivation, apperr.KindUnknown:
		return status.Error(codes.Internal, envelope.GenericMessage)
	}
	return status.Error(codes.Internal, envelope.GenericMessage)
}
