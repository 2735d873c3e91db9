package servers

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerJSON []byte
	swaggerErr  error
)

// GetSwagger returns the validated OpenAPI document embedded in the binary.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openapiYAML)
		if err != nil {
			swaggerErr = errors.Wrap(err, "load openapi document")
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = errors.Wrap(err, "validate openapi document")
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			swaggerErr = errors.Wrap(err, "encode openapi document")
			return
		}
		swaggerDoc, swaggerJSON = doc, raw
	})
	return swaggerDoc, swaggerErr
}

// swaggerSpec feeds the document to swag so echo-swagger can serve it as doc.json.
type swaggerSpec struct{}

func (swaggerSpec) ReadDoc() string {
	if _, err := GetSwagger(); err != nil {
		return "{}"
	}
	return string(swaggerJSON)
}

// RegisterSwagger makes the document available under swag's default instance name.
// Calling it more than once is a no-op.
func RegisterSwagger() error {
	if _, err := GetSwagger(); err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerSpec{})
	})
	return nil
}

var registerOnce sync.Once
