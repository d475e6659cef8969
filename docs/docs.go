// Package docs registers the OpenAPI document served under /swagger.
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
        "/healthcheck": {
            "get": {
                "description": "Check if server is alive and how many movies are loaded",
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/httpserver.APIResponse"}
                    }
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["text/html"],
                "tags": ["movies"],
                "summary": "Movie catalog page",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/movies/search": {
            "get": {
                "description": "Filter the catalog by name, id and genre. Name and genre are case-insensitive partial matches.",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Search Movies",
                "parameters": [
                    {"type": "string", "description": "Movie name (partial match)", "name": "name", "in": "query"},
                    {"type": "integer", "description": "Movie id (positive)", "name": "id", "in": "query"},
                    {"type": "string", "description": "Genre (partial match)", "name": "genre", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.MovieSearchResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.MovieSearchResponse"}}
                }
            }
        },
        "/movies/search/form": {
            "get": {
                "produces": ["text/html"],
                "tags": ["movies"],
                "summary": "Movie search page",
                "parameters": [
                    {"type": "string", "description": "Movie name (partial match)", "name": "name", "in": "query"},
                    {"type": "integer", "description": "Movie id (positive)", "name": "id", "in": "query"},
                    {"type": "string", "description": "Genre (partial match)", "name": "genre", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/movies/{id}/details": {
            "get": {
                "produces": ["text/html"],
                "tags": ["movies"],
                "summary": "Movie details page",
                "parameters": [
                    {"type": "integer", "description": "Movie id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "httpserver.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "info": {"type": "string"},
                "message": {"type": "string"},
                "result": {}
            }
        },
        "httpserver.MovieSearchResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "movies": {"type": "array", "items": {"$ref": "#/definitions/movie.Movie"}},
                "success": {"type": "boolean"}
            }
        },
        "movie.Movie": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "director": {"type": "string"},
                "duration": {"type": "integer"},
                "genre": {"type": "string"},
                "id": {"type": "integer"},
                "imdbRating": {"type": "number"},
                "movieName": {"type": "string"},
                "year": {"type": "integer"}
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
	Title:            "qdevmovies API",
	Description:      "Read-only movie catalog with search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
