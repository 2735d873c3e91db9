package servers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"hyperlocal/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger_LoadsAndValidates(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	assert.Equal(t, "/api", doc.Servers[0].URL)
	assert.NotNil(t, doc.Paths.Find("/orders/{id}/verify-otp"))
	assert.NotNil(t, doc.Components.Schemas["DashboardStats"])
}

// Every route the router registers must be documented, and the other way round.
func TestGetSwagger_MatchesRegisteredRoutes(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	documented := map[string]bool{}
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented[method+" "+path] = true
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, nil)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		path := strings.NewReplacer(":id", "{id}", ":key", "{key}").Replace(r.Path)
		registered[r.Method+" "+path] = true
	}

	assert.Equal(t, documented, registered)
	assert.True(t, registered[http.MethodPut+" /orders/{id}/assign"])
}

func TestRegisterSwagger(t *testing.T) {
	require.NoError(t, servers.RegisterSwagger())
	require.NoError(t, servers.RegisterSwagger())

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}
