// Package docs holds the swagger description served under /swagger/.
// Regenerate with: swag init -g cmd/pagekit-server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/authenticate": {
            "post": {
                "description": "Checks email and password; failures yield auth:failed",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Authenticate",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "boolean", "description": "Remember me", "name": "remember", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}
                }
            }
        },
        "/api/ping": {
            "get": {
                "description": "Returns pong and the server time",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PingResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "description": "Lists registered users, newest first",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page index (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UsersResponse"}}
                }
            },
            "post": {
                "description": "Registers a user from form fields; invalid fields yield value:invalid with data set to the field",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register user",
                "parameters": [
                    {"type": "string", "description": "Display name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "description": "Gets a user by id; unknown ids yield value:notfound",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}
                }
            }
        }
    },
    "definitions": {
        "model.APIError": {
            "type": "object",
            "properties": {
                "data": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.Page": {
            "type": "object",
            "properties": {
                "has_next": {"type": "boolean"},
                "has_previous": {"type": "boolean"},
                "item_count": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "page_count": {"type": "integer"},
                "page_index": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "model.PingResponse": {
            "type": "object",
            "properties": {
                "pong": {"type": "boolean"},
                "time": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "admin": {"type": "boolean"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "model.UsersResponse": {
            "type": "object",
            "properties": {
                "page": {"$ref": "#/definitions/model.Page"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pagekit demo API",
	Description:      "JSON API that reports application errors as {error, data, message} inside 200 responses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
