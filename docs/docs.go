// Package docs Código generado por swaggo/swag. NO EDITAR A MANO.
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
        "/api/admin/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Lista categorías con búsqueda y paginación",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Crea una categoría",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/admin/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Obtiene una categoría con sus opciones",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categorias"],
                "summary": "Actualiza una categoría",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["categorias"],
                "summary": "Elimina una categoría",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/admin/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["opciones"],
                "summary": "Lista opciones con sus valores",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["opciones"],
                "summary": "Crea una opción con sus valores",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/admin/options/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["opciones"],
                "summary": "Obtiene una opción",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["opciones"],
                "summary": "Actualiza una opción y reemplaza sus valores",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["opciones"],
                "summary": "Elimina una opción",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/admin/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Lista productos con búsqueda y paginación",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Crea un producto con slug y SKU autogenerados",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/admin/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Obtiene un producto con opciones y valores habilitados",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Actualiza un producto y sincroniza sus asociaciones",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["productos"],
                "summary": "Elimina un producto",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/admin/exports/pricelist.pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["exportaciones"],
                "summary": "Genera la lista de precios en PDF",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/feed/products.xml": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["exportaciones"],
                "summary": "Genera el feed XML del catálogo",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/configurator/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["configurador"],
                "summary": "Lista las categorías disponibles para el configurador",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/configurator/categories/{id}/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["configurador"],
                "summary": "Lista productos configurables de una categoría",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/configurator/configure": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["configurador"],
                "summary": "Calcula SKU y precio de una configuración",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        }
    }
}`

// SwaggerInfo mantiene los valores exportados de la documentación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catálogo API",
	Description:      "API de administración de catálogo con configurador de productos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
