package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"freight/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

var (
	formatsOnce sync.Once
	swaggerOnce sync.Once
)

// registerFormats teaches kin-openapi the uuid format. Any RFC 4122 layout is
// accepted, not only versions 1 to 5.
func registerFormats() {
	formatsOnce.Do(func() {
		openapi3.DefineStringFormatValidator("uuid", openapi3.NewCallbackValidator(func(s string) error {
			_, err := uuid.Parse(s)
			return err
		}))
	})
}

// LoadOpenAPI returns the validated API document.
func LoadOpenAPI() (*openapi3.T, error) {
	registerFormats()
	return servers.GetSwagger()
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// registerSwagger publishes doc to echo-swagger under the default instance.
// swag panics on a second registration of the same name.
func registerSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	})
	return nil
}

// RequestValidator rejects requests that do not match doc before they reach
// the handlers. Requests for paths outside doc pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return invalidRequest(ctx, err)
			}
			return next(ctx)
		}
	}, nil
}

func invalidRequest(ctx echo.Context, err error) error {
	body := servers.Error{Code: http.StatusBadRequest, Message: err.Error()}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			name := reqErr.Parameter.Name
			body.Field = &name
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
				field := strings.Join(pointer, ".")
				body.Field = &field
			}
			body.Message = schemaErr.Reason
		}
	}

	return ctx.JSON(http.StatusBadRequest, body)
}
