// Package docs contiene la definición OpenAPI servida en /docs.
// Se regenera con: swag init -g cmd/api/main.go -o docs
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Estado del servicio", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Almacenamiento no disponible"}}}
        },
        "/api/auth/code": {
            "post": {"tags": ["auth"], "summary": "Iniciar sesión con código de acceso",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CodeLoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/auth/sign-in": {
            "post": {"tags": ["auth"], "summary": "Iniciar sesión con email y contraseña",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignInRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/auth/sign-up": {
            "post": {"tags": ["auth"], "summary": "Registrar empleado",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignUpRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/auth/me": {
            "get": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Usuario autenticado", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}}
        },
        "/api/categories": {
            "get": {"security": [{"Bearer": []}], "tags": ["categories"], "summary": "Listar categorías", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryResponse"}}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["categories"], "summary": "Crear categoría",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/catalog": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Catálogo agrupado por categoría", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/products": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Listar productos", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "query", "name": "category_id"}, {"type": "string", "in": "query", "name": "q"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductListResponse"}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Crear producto",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/products/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Obtener producto", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/products/{id}/movements": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Historial de movimientos de un producto", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true},
                    {"type": "integer", "in": "query", "name": "limit"}, {"type": "integer", "in": "query", "name": "offset"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/products/{id}/reconciliation": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Conciliar stock con el libro de movimientos", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/inventory/movements": {
            "get": {"security": [{"Bearer": []}], "tags": ["inventory"], "summary": "Últimos movimientos", "produces": ["application/json"],
                "parameters": [{"type": "integer", "in": "query", "name": "limit"}],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["inventory"], "summary": "Registrar movimiento de stock",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterMovementRequest"}}],
                "responses": {"201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/inventory/low-stock": {
            "get": {"security": [{"Bearer": []}], "tags": ["inventory"], "summary": "Productos con stock bajo", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductListResponse"}}}}
        },
        "/api/inventory/depleted": {
            "get": {"security": [{"Bearer": []}], "tags": ["inventory"], "summary": "Productos agotados", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductListResponse"}}}}
        },
        "/api/inventory/summary": {
            "get": {"security": [{"Bearer": []}], "tags": ["inventory"], "summary": "Resumen de niveles de stock", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/reports/low-stock": {
            "get": {"security": [{"Bearer": []}], "tags": ["reports"], "summary": "Reporte de faltantes (texto)", "produces": ["text/plain"],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/api/reports/low-stock.pdf": {
            "get": {"security": [{"Bearer": []}], "tags": ["reports"], "summary": "Reporte de faltantes (PDF)", "produces": ["application/pdf"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {
            "code": {"type": "string"}, "message": {"type": "string"}, "retryable": {"type": "boolean"}}},
        "dto.CodeLoginRequest": {"type": "object", "properties": {"codigo": {"type": "string"}}},
        "dto.SignInRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "dto.SignUpRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}, "nombre": {"type": "string"}}},
        "dto.UserResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "nombre": {"type": "string"}, "email": {"type": "string"},
            "rol": {"type": "string"}, "created_at": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {
            "token": {"type": "string"}, "usuario": {"$ref": "#/definitions/dto.UserResponse"}}},
        "dto.CreateCategoryRequest": {"type": "object", "properties": {"nombre": {"type": "string"}, "descripcion": {"type": "string"}}},
        "dto.CategoryResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "nombre": {"type": "string"}, "descripcion": {"type": "string"}, "created_at": {"type": "string"}}},
        "dto.CreateProductRequest": {"type": "object", "properties": {
            "nombre": {"type": "string"}, "descripcion": {"type": "string"}, "stock_minimo": {"type": "integer"},
            "unidad": {"type": "string"}, "precio": {"type": "number"}, "categoria_id": {"type": "string"}}},
        "dto.ProductResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "nombre": {"type": "string"}, "descripcion": {"type": "string"},
            "unidad": {"type": "string"}, "stock_minimo": {"type": "integer"}, "stock_actual": {"type": "integer"},
            "precio": {"type": "number"}, "categoria_id": {"type": "string"}, "categoria": {"type": "string"},
            "estado": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "dto.ProductListResponse": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductResponse"}}, "total": {"type": "integer"}}},
        "dto.RegisterMovementRequest": {"type": "object", "properties": {
            "producto_id": {"type": "string"}, "tipo": {"type": "string", "enum": ["entrada", "salida"]},
            "cantidad": {"type": "integer"}, "motivo": {"type": "string"}}}
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventario Restaurante API",
	Description:      "Control de stock del restaurante: libro de movimientos, faltantes y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
