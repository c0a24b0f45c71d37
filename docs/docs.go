// Package docs holds the OpenAPI description served at /swagger.
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
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/sign-up": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Sign up",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.authCredentials"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "integer"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/sign-in": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Sign in",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.authCredentials"
						}
					}
				],
				"responses": {
					"200": {
						"description": "token",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "List maintenance records",
				"description": "Newest first. status, category and priority accept \"all\". page_size defaults to 10.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Matches asset tag, issue or technician",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Status filter",
						"name": "status",
						"in": "query",
						"enum": [
							"all",
							"pending",
							"scheduled",
							"in-progress",
							"completed",
							"cancelled"
						]
					},
					{
						"type": "string",
						"description": "Category filter",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Priority filter",
						"name": "priority",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number (1-based)",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (max 100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Page"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Create maintenance request",
				"description": "Opens a pending ticket with one creation event.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateMaintenanceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.MaintenanceRecord"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/export": {
			"get": {
				"produces": [
					"text/csv"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Export maintenance report",
				"description": "CSV with every matching record; every cell is quoted.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"description": "",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "",
						"name": "priority",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "CSV report",
						"schema": {
							"type": "string"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/bulk": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Bulk update",
				"description": "Applies status and/or priority to each id independently; failures are reported per id.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Bulk change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.BulkRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.BulkResult"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Get maintenance record",
				"description": "Includes the timeline and comments, newest first.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.MaintenanceRecord"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Update maintenance record",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Changed fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateMaintenanceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.MaintenanceRecord"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/{id}/status": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Change status",
				"description": "Moving to the current status is a no-op and records nothing.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New status and optional reason",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.StatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.MaintenanceRecord"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/{id}/comments": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Add comment",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Comment",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CommentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.TimelineEvent"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/maintenance/{id}/timeline": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Get timeline",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Event type",
						"name": "type",
						"in": "query",
						"enum": [
							"all",
							"status_change",
							"comment",
							"assignment",
							"creation",
							"update"
						]
					}
				],
				"responses": {
					"200": {
						"description": "count, events",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Appends a manual update entry. Status, comment and assignment events come from their own endpoints.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Record timeline entry",
				"parameters": [
					{
						"type": "string",
						"description": "Record id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Entry",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.TimelineEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.TimelineEvent"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/assets/{tag}/maintenance": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Asset maintenance history",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Asset tag",
						"name": "tag",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "count, records",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Board projection",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Narrow the board by asset tag, issue or technician",
						"name": "search",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/board.Snapshot"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board/legend": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Presentation legend",
				"description": "Label, color and icon for every status, priority and event type.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/board.Legend"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board/drop": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Drop a ticket",
				"description": "Resolves a drag. Returns action open_detail, noop, or confirm with the pending transition.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Drag end",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.DropRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.DropOutcome"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board/transition": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Current pending transition",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.Pending"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board/transition/{id}/confirm": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Confirm pending transition",
				"description": "On failure the transition stays open for retry or cancel.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Pending transition id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Optional reason",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handlers.ConfirmRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.MaintenanceRecord"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/board/transition/{id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"board"
				],
				"summary": "Cancel pending transition",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Pending transition id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/ws": {
			"get": {
				"tags": [
					"board"
				],
				"summary": "Live board stream",
				"description": "WebSocket. Pushes {\"type\":\"board\",\"data\":{board,pending}} every interval (?interval=5s or ?interval_ms=5000, max 1m). Token via Authorization header or ?token=.",
				"parameters": [
					{
						"type": "string",
						"description": "JWT when headers cannot be set",
						"name": "token",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Board search",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Push interval, e.g. 2s",
						"name": "interval",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Push interval in milliseconds",
						"name": "interval_ms",
						"in": "query"
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					},
					"401": {
						"description": "Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"board.ColumnView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				},
				"records": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.MaintenanceRecord"
					}
				}
			}
		},
		"board.Legend": {
			"type": "object",
			"properties": {
				"statuses": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/board.Style"
					}
				},
				"priorities": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/board.Style"
					}
				},
				"events": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/board.Style"
					}
				}
			}
		},
		"board.Snapshot": {
			"type": "object",
			"properties": {
				"columns": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/board.ColumnView"
					}
				},
				"total": {
					"type": "integer"
				},
				"hidden": {
					"type": "integer"
				}
			}
		},
		"board.Style": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"color": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				}
			}
		},
		"handlers.BulkRequest": {
			"type": "object",
			"required": [
				"ids"
			],
			"properties": {
				"ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"type": "string",
					"example": "scheduled"
				},
				"priority": {
					"type": "string",
					"example": "high"
				},
				"reason": {
					"type": "string"
				}
			}
		},
		"handlers.CommentRequest": {
			"type": "object",
			"required": [
				"content"
			],
			"properties": {
				"content": {
					"type": "string",
					"example": "Ordered a replacement panel"
				},
				"isInternal": {
					"type": "boolean"
				}
			}
		},
		"handlers.ConfirmRequest": {
			"type": "object",
			"properties": {
				"reason": {
					"type": "string",
					"example": "Vendor visit booked"
				}
			}
		},
		"handlers.CreateMaintenanceRequest": {
			"type": "object",
			"required": [
				"assetTag",
				"assetCategory",
				"issue",
				"description",
				"category",
				"priority"
			],
			"properties": {
				"assetTag": {
					"type": "string",
					"example": "LAP-0042"
				},
				"assetCategory": {
					"type": "string",
					"example": "Laptop"
				},
				"assetMake": {
					"type": "string",
					"example": "Dell"
				},
				"assetModel": {
					"type": "string",
					"example": "Latitude 7440"
				},
				"issue": {
					"type": "string",
					"example": "Screen flickers"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string",
					"enum": [
						"hardware",
						"software",
						"network",
						"preventive"
					]
				},
				"priority": {
					"type": "string",
					"enum": [
						"low",
						"medium",
						"high",
						"critical"
					]
				},
				"technician": {
					"type": "string"
				},
				"reportedBy": {
					"type": "string"
				},
				"scheduledDate": {
					"type": "string",
					"example": "2024-03-04"
				},
				"estimatedCost": {
					"type": "number",
					"example": 150
				},
				"notes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handlers.DropRequest": {
			"type": "object",
			"required": [
				"recordId"
			],
			"properties": {
				"recordId": {
					"type": "string",
					"example": "MNT-004"
				},
				"overId": {
					"type": "string",
					"example": "in-progress"
				},
				"travel": {
					"type": "number",
					"example": 42
				}
			}
		},
		"handlers.StatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string",
					"example": "in-progress"
				},
				"reason": {
					"type": "string",
					"example": "Parts arrived"
				}
			}
		},
		"handlers.TimelineEntryRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"type": {
					"type": "string",
					"example": "update"
				},
				"title": {
					"type": "string",
					"example": "Warranty checked"
				},
				"description": {
					"type": "string",
					"example": "Covered until 2026"
				}
			}
		},
		"handlers.UpdateMaintenanceRequest": {
			"type": "object",
			"properties": {
				"issue": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				},
				"technician": {
					"type": "string"
				},
				"scheduledDate": {
					"type": "string"
				},
				"estimatedCost": {
					"type": "number"
				},
				"actualCost": {
					"type": "number"
				}
			}
		},
		"handlers.authCredentials": {
			"type": "object",
			"required": [
				"username",
				"password"
			],
			"properties": {
				"username": {
					"type": "string",
					"example": "jdoe"
				},
				"password": {
					"type": "string",
					"example": "s3cr3t"
				}
			}
		},
		"models.Comment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				},
				"isInternal": {
					"type": "boolean"
				}
			}
		},
		"models.MaintenanceRecord": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "MNT-001"
				},
				"assetTag": {
					"type": "string"
				},
				"assetCategory": {
					"type": "string"
				},
				"assetMake": {
					"type": "string"
				},
				"assetModel": {
					"type": "string"
				},
				"issue": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"scheduled",
						"in-progress",
						"completed",
						"cancelled"
					]
				},
				"priority": {
					"type": "string"
				},
				"technician": {
					"type": "string"
				},
				"reportedBy": {
					"type": "string"
				},
				"reportedDate": {
					"type": "string"
				},
				"scheduledDate": {
					"type": "string"
				},
				"completedDate": {
					"type": "string"
				},
				"estimatedCost": {
					"type": "number"
				},
				"actualCost": {
					"type": "number"
				},
				"notes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"timeline": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.TimelineEvent"
					}
				},
				"comments": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Comment"
					}
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.Page": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.MaintenanceRecord"
					}
				},
				"page": {
					"type": "integer"
				},
				"pageSize": {
					"type": "integer"
				},
				"totalItems": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				}
			}
		},
		"models.TimelineEvent": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"status_change",
						"comment",
						"assignment",
						"creation",
						"update"
					]
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"user": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"service.BulkResult": {
			"type": "object",
			"properties": {
				"updated": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"failed": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"service.DropOutcome": {
			"type": "object",
			"properties": {
				"action": {
					"type": "string",
					"enum": [
						"open_detail",
						"noop",
						"confirm"
					]
				},
				"recordId": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				},
				"pending": {
					"$ref": "#/definitions/service.Pending"
				}
			}
		},
		"service.Pending": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"recordId": {
					"type": "string"
				},
				"assetTag": {
					"type": "string"
				},
				"issue": {
					"type": "string"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"targetLabel": {
					"type": "string",
					"example": "IN PROGRESS"
				},
				"committing": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				},
				"expiresAt": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Asset Maintenance API",
	Description:      "Maintenance ticket workflow: board, confirmed status transitions, timeline and CSV export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
