// Package docs registers the OpenAPI document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/voice/task": {
            "post": {
                "description": "Extracts task attributes from a transcript with the local rule-based extractors.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Voice"],
                "summary": "Parse a task utterance",
                "parameters": [
                    {"description": "Transcript", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.transcriptReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseTaskResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice/task/remote": {
            "post": {
                "description": "Extracts task attributes through the configured language model. Any model failure yields the all-defaults record with source \"fallback\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Voice"],
                "summary": "Parse a task utterance with the hosted model",
                "parameters": [
                    {"description": "Transcript", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.transcriptReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseTaskResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice/filter": {
            "post": {
                "description": "Extracts task filter criteria from a spoken query.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Voice"],
                "summary": "Parse a filter query",
                "parameters": [
                    {"description": "Transcript", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.transcriptReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseFilterResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/voice/filter/apply": {
            "post": {
                "description": "Parses the query and returns the supplied tasks that match it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Voice"],
                "summary": "Filter a task list by a spoken query",
                "parameters": [
                    {"description": "Transcript and tasks", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.applyFilterReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.applyFilterResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}}
        }
    },
    "definitions": {
        "http.transcriptReq": {
            "type": "object",
            "required": ["transcript"],
            "properties": {
                "transcript": {"type": "string", "maxLength": 2000},
                "now": {"description": "Caller's current instant (RFC 3339). Defaults to server time.", "type": "string"}
            }
        },
        "http.applyFilterReq": {
            "type": "object",
            "required": ["transcript"],
            "properties": {
                "transcript": {"type": "string", "maxLength": 2000},
                "now": {"type": "string"},
                "tasks": {"type": "array", "maxItems": 1000, "items": {"$ref": "#/definitions/model.Task"}}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-05-02"},
                "dueTime": {"type": "string", "example": "17:00"},
                "duration": {"type": "integer"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "category": {"type": "string", "enum": ["work", "personal", "urgent", "other"]},
                "reminderMinutes": {"type": "integer"}
            }
        },
        "http.parseTaskResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.taskResp"},
                "source": {"type": "string", "enum": ["local", "remote", "fallback"]}
            }
        },
        "http.filterResp": {
            "type": "object",
            "properties": {
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "category": {"type": "string", "enum": ["work", "personal", "urgent", "other"]},
                "searchText": {"type": "string"},
                "dueToday": {"type": "boolean"},
                "dueTime": {"type": "string"},
                "maxDuration": {"type": "integer"}
            }
        },
        "http.parseFilterResp": {
            "type": "object",
            "properties": {"filter": {"$ref": "#/definitions/http.filterResp"}}
        },
        "http.applyFilterResp": {
            "type": "object",
            "properties": {
                "filter": {"$ref": "#/definitions/http.filterResp"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}},
                "count": {"type": "integer"}
            }
        },
        "model.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string"},
                "dueTime": {"type": "string"},
                "duration": {"type": "integer"},
                "priority": {"type": "string"},
                "category": {"type": "string"},
                "reminderMinutes": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Voice Task Parser API",
	Description:      "Turns spoken task utterances and filter queries into structured records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
