package source

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/smykla-labs/adapterqa/pkg/schema"
)

// ErrInvalidEnvelope is returned when an adapter types document does not match the expected shape.
var ErrInvalidEnvelope = errors.New("invalid adapter types document")

const envelopeURL = "https://adapterqa.local/schemas/adapter-types.json"

//go:embed envelope.schema.json
var envelopeSchema []byte

var (
	envelopeOnce     sync.Once
	envelopeCompiled *jsonschema.Schema
	envelopeErr      error
)

func envelope() (*jsonschema.Schema, error) {
	envelopeOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(envelopeSchema))
		if err != nil {
			envelopeErr = errors.Wrap(err, "parse envelope schema")
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(envelopeURL, doc); err != nil {
			envelopeErr = errors.Wrap(err, "add envelope schema")
			return
		}

		envelopeCompiled, envelopeErr = c.Compile(envelopeURL)
	})

	return envelopeCompiled, envelopeErr
}

// Decode validates data against the adapter types envelope and decodes it.
// source names the document in errors.
func Decode(data []byte, source string) (*schema.AdapterTypeList, error) {
	sch, err := envelope()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrInvalidEnvelope), "%s", source)
	}

	if err := sch.Validate(inst); err != nil {
		return nil, errors.WithDetail(
			errors.Wrapf(ErrInvalidEnvelope, "%s", source),
			err.Error(),
		)
	}

	var list schema.AdapterTypeList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrInvalidEnvelope), "%s", source)
	}

	return &list, nil
}
