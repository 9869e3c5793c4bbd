// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a new user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/auth/authWithToken": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Validate the current token", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/auth/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/products": {
            "get": {"tags": ["products"], "summary": "List every product", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Create a product", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.productRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/products/page/{skip}/{top}": {
            "get": {"tags": ["products"], "summary": "Page through products", "description": "Also served under /type/{type}, /search/{search} and /sort/{sortBy}/{sortVal} prefixes and their combinations.", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "skip", "required": true}, {"type": "string", "in": "path", "name": "top", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.productPage"}}}}
        },
        "/api/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Update a product", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.productRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Delete a product", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/orders/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "List a user's orders", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Order"}}}}}
        },
        "/api/carts/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["carts"], "summary": "List a user's cart", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CartItem"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["carts"], "summary": "Add an item to a cart", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"type": "string", "in": "header", "name": "Idempotency-Key"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.cartItemRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CartItem"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/carts/{id}/{idOrder}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["carts"], "summary": "Remove an item from a cart", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"type": "string", "in": "path", "name": "idOrder", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CartItem"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/carts/checkout/{id}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["carts"], "summary": "Check out a cart", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.checkoutRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Order"}}}}}
        },
        "/api/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List every user", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.userRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}}
        },
        "/api/users/page/{skip}/{top}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Page through users", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "skip", "required": true}, {"type": "string", "in": "path", "name": "top", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userPage"}}}}
        },
        "/api/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user profile", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.userUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorBody"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete a user", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}}
        },
        "/api/admin/account-setting/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Override a user's credentials", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.accountSettingRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}}
        },
        "/api/admin/user-role/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Grant a role", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.userRoleRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}}}}
        },
        "/api/customers/page/{skip}/{top}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["customers"], "summary": "Page through customers", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "skip", "required": true}, {"type": "string", "in": "path", "name": "top", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.customerPage"}}}}
        },
        "/api/customers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["customers"], "summary": "Get a customer", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Customer"}}}}
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "domain.Address": {"type": "object", "properties": {"city": {"type": "string"}, "address": {"type": "string"}}},
        "domain.Product": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "number"}, "color": {"type": "integer"},
            "thumbnail": {"type": "string"}, "detailimg": {"type": "array", "items": {"type": "string"}},
            "colorimg": {"type": "array", "items": {"type": "string"}}, "size": {"type": "array", "items": {"type": "string"}},
            "type": {"type": "string"}, "gender": {"type": "string"}}},
        "domain.User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "email": {"type": "string"}, "password": {"type": "string"}, "token": {"type": "string"},
            "phoneNumber": {"type": "string"}, "address": {"$ref": "#/definitions/domain.Address"}, "avatar": {"type": "string"},
            "rules": {"type": "array", "items": {"type": "string"}}, "expired": {"type": "string", "format": "date-time"}}},
        "domain.CartItem": {"type": "object", "properties": {
            "id": {"type": "string"}, "idUser": {"type": "string"}, "urlImg": {"type": "string"}, "productName": {"type": "string"},
            "size": {"type": "string"}, "quantity": {"type": "integer"}, "price": {"type": "number"}}},
        "domain.Order": {"type": "object", "properties": {
            "id": {"type": "string"}, "idUser": {"type": "string"}, "urlImg": {"type": "string"}, "productName": {"type": "string"},
            "size": {"type": "string"}, "quantity": {"type": "integer"}, "price": {"type": "number"}, "name": {"type": "string"},
            "address": {"type": "string"}, "phoneNumber": {"type": "string"}}},
        "domain.Customer": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}, "phoneNumber": {"type": "string"},
            "city": {"type": "string"}, "address": {"type": "string"}}},
        "handler.credentialsRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handler.productRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "price": {"type": "number"}, "color": {"type": "integer"}, "thumbnail": {"type": "string"},
            "detailimg": {"type": "array", "items": {"type": "string"}}, "colorimg": {"type": "array", "items": {"type": "string"}},
            "size": {"type": "array", "items": {"type": "string"}}, "type": {"type": "string"}, "gender": {"type": "string"}}},
        "handler.userRequest": {"type": "object", "required": ["email", "password"], "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}, "phoneNumber": {"type": "string"},
            "address": {"$ref": "#/definitions/domain.Address"}, "avatar": {"type": "string"}}},
        "handler.userUpdateRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}, "phoneNumber": {"type": "string"},
            "address": {"$ref": "#/definitions/domain.Address"}, "avatar": {"type": "string"}}},
        "handler.accountSettingRequest": {"type": "object", "required": ["newEmail", "newPassword"], "properties": {"newEmail": {"type": "string"}, "newPassword": {"type": "string"}}},
        "handler.userRoleRequest": {"type": "object", "required": ["role"], "properties": {"role": {"type": "string"}}},
        "handler.cartItemRequest": {"type": "object", "required": ["productName"], "properties": {
            "urlImg": {"type": "string"}, "productName": {"type": "string"}, "size": {"type": "string"}, "price": {"type": "number"}}},
        "handler.checkoutRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"}, "phoneNumber": {"type": "string"}}},
        "handler.productPage": {"type": "object", "properties": {"results": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}, "totalRecords": {"type": "integer"}}},
        "handler.userPage": {"type": "object", "properties": {"results": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}, "totalRecords": {"type": "integer"}}},
        "handler.customerPage": {"type": "object", "properties": {"results": {"type": "array", "items": {"$ref": "#/definitions/domain.Customer"}}, "totalRecords": {"type": "integer"}}},
        "handler.errorBody": {"type": "object", "properties": {"error": {"type": "string"}, "message": {"type": "string"}, "nameInput": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Commerce API",
	Description:      "Mock commerce backend: products, users, carts, orders and customers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
