// Package docs holds the swagger metadata served in non-production builds.
// Run `swag init -g cmd/velora_backend/main.go -o cmd/docs` to regenerate the
// full OpenAPI document from the handler annotations.
package docs

import "github.com/swaggo/swag"

var doc = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Velora Backend API",
	Description:      "Transactional ledger and inventory costing engine for POS/ERP deployments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
