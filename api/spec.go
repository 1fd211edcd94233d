// Package api holds the OpenAPI description of the HTTP surface.
//
// The document is embedded at build time. GetSwagger parses and validates it
// with kin-openapi; RegisterSwagger publishes it to swag so that echo-swagger
// can serve the UI.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawSpec []byte

// RawSpec returns a copy of the embedded OpenAPI document.
func RawSpec() []byte {
	out := make([]byte, len(rawSpec))
	copy(out, rawSpec)
	return out
}

// GetSwagger loads the embedded document and validates it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return doc, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(rawSpec)
}

var registerOnce sync.Once

// RegisterSwagger makes the document available under swag.Name.
// swag panics on duplicate registration, so repeated calls are no-ops.
func RegisterSwagger() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
}
