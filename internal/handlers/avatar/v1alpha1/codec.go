package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// decodeRequest maps a Struct onto a request type. Unknown fields are
// rejected so a misspelt option fails loudly instead of being ignored.
func decodeRequest(req *structpb.Struct, dst any) error {
	if req == nil || len(req.GetFields()) == 0 {
		return nil
	}
	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	return nil
}

// checkSeed guards the seed after decoding. Struct numbers are doubles, so a
// seed past the exact integer range has already been rounded by the time it
// gets here.
func checkSeed(seed *int64) error {
	vb := errors.NewValidationBuilder()
	entities.ValidateSeed("seed", seed, vb)
	return vb.Build()
}

// encodeResponse renders any JSON-marshalable value as a Struct
func encodeResponse(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// DecodeResponse is the client side of encodeResponse
func DecodeResponse(resp *structpb.Struct, dst any) error {
	data, err := protojson.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// EncodeRequest is the client side of decodeRequest
func EncodeRequest(v any) (*structpb.Struct, error) {
	return encodeResponse(v)
}
