// Package docs registra el documento Swagger servido en /swagger/doc.json.
// Refleja las anotaciones godoc de los handlers (swag init -g cmd/api/main.go -o internal/docs).
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
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.animalResponse"}}}
                }
            },
            "post": {
                "description": "desplazamientoId no se valida contra los modos existentes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Crear animal",
                "parameters": [
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.animalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/locomotion-modes/{animalName}": {
            "get": {
                "description": "Busca animales por nombre (sin distinguir mayúsculas) y devuelve sus modos. Los modos eliminados se omiten.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Modos de desplazamiento de un animal",
                "parameters": [
                    {"type": "string", "description": "Nombre del animal", "name": "animalName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/locomotion.ModeResponse"}}},
                    "400": {"description": "animal name required", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Obtener animal",
                "parameters": [
                    {"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "invalid id", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "El ID del path manda; el resto de campos se sobrescribe.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Reemplazar animal",
                "parameters": [
                    {"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.animalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "invalid id / invalid json", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["animals"],
                "summary": "Eliminar animal",
                "parameters": [
                    {"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "invalid id", "schema": {"type": "string"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/locomotion-modes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locomotion-modes"],
                "summary": "Listar modos de desplazamiento",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/locomotion.ModeResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["locomotion-modes"],
                "summary": "Crear modo de desplazamiento",
                "parameters": [
                    {"description": "Tipo y velocidad (km/h)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/locomotion.modeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/locomotion.ModeResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        },
        "/locomotion-modes/category/{category}": {
            "get": {
                "description": "Coincidencia exacta sin distinguir mayúsculas. Sin coincidencias devuelve una lista vacía.",
                "produces": ["application/json"],
                "tags": ["locomotion-modes"],
                "summary": "Filtrar modos por tipo",
                "parameters": [
                    {"type": "string", "description": "Tipo (Terrestre, Aéreo, Acuático...)", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/locomotion.ModeResponse"}}},
                    "400": {"description": "category required", "schema": {"type": "string"}}
                }
            }
        },
        "/locomotion-modes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locomotion-modes"],
                "summary": "Obtener modo de desplazamiento",
                "parameters": [
                    {"type": "integer", "description": "ID del modo", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/locomotion.ModeResponse"}},
                    "400": {"description": "invalid id", "schema": {"type": "string"}},
                    "404": {"description": "locomotion mode not found", "schema": {"type": "string"}}
                }
            },
            "put": {
                "description": "Sobrescribe tipo y velocidad conservando el ID y la posición en la colección.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["locomotion-modes"],
                "summary": "Reemplazar modo de desplazamiento",
                "parameters": [
                    {"type": "integer", "description": "ID del modo", "name": "id", "in": "path", "required": true},
                    {"description": "Tipo y velocidad (km/h)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/locomotion.modeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/locomotion.ModeResponse"}},
                    "400": {"description": "invalid id / invalid json", "schema": {"type": "string"}},
                    "404": {"description": "locomotion mode not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "No valida animales que lo referencian; el join los omite.",
                "tags": ["locomotion-modes"],
                "summary": "Eliminar modo de desplazamiento",
                "parameters": [
                    {"type": "integer", "description": "ID del modo", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "invalid id", "schema": {"type": "string"}},
                    "404": {"description": "locomotion mode not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "animals.animalRequest": {
            "type": "object",
            "properties": {
                "desplazamientoId": {"type": "integer", "example": 1},
                "domesticable": {"type": "boolean", "example": true},
                "especie": {"type": "string", "example": "Perro"},
                "nombre": {"type": "string", "example": "Cholito"}
            }
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "desplazamientoId": {"type": "integer"},
                "domesticable": {"type": "boolean"},
                "especie": {"type": "string"},
                "id": {"type": "integer"},
                "nombre": {"type": "string"}
            }
        },
        "locomotion.ModeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "tipo": {"type": "string"},
                "velocidad": {"type": "number"}
            }
        },
        "locomotion.modeRequest": {
            "type": "object",
            "properties": {
                "tipo": {"type": "string", "example": "Terrestre"},
                "velocidad": {"type": "number", "example": 50}
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
	Title:            "Animales + Desplazamientos API",
	Description:      "CRUD en memoria de animales y sus modos de desplazamiento.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
