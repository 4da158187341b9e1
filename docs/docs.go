// Package docs holds the OpenAPI document served by the Swagger UI.
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
		"/auth/sign-up": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new account",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/auth/verify-email": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Verify an email with the OTP",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/auth/resend-otp": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Send a new verification code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/auth/sign-in": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Exchange credentials for an access token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Request a password reset code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Reset the password with a code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payload"
					}
				]
			}
		},
		"/user": {
			"get": {
				"tags": [
					"user"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "skip",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "string",
						"name": "name",
						"in": "query"
					},
					{
						"type": "string",
						"name": "email",
						"in": "query"
					},
					{
						"type": "string",
						"name": "role",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"user"
				],
				"summary": "Create a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "user"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/user/{id}": {
			"get": {
				"tags": [
					"user"
				],
				"summary": "Get a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"user"
				],
				"summary": "Update a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"user"
				],
				"summary": "Delete a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/userMe": {
			"get": {
				"tags": [
					"user"
				],
				"summary": "Get own profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"user"
				],
				"summary": "Update own profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"user"
				],
				"summary": "Deactivate own account",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/category": {
			"get": {
				"tags": [
					"category"
				],
				"summary": "List categorys",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				}
			},
			"post": {
				"tags": [
					"category"
				],
				"summary": "Create a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "category"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/category/{id}": {
			"get": {
				"tags": [
					"category"
				],
				"summary": "Get a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"category"
				],
				"summary": "Update a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"category"
				],
				"summary": "Delete a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/sub-category": {
			"get": {
				"tags": [
					"sub-category"
				],
				"summary": "List sub-categorys",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				}
			},
			"post": {
				"tags": [
					"sub-category"
				],
				"summary": "Create a sub-category",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "sub-category"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/sub-category/{id}": {
			"get": {
				"tags": [
					"sub-category"
				],
				"summary": "Get a sub-category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"sub-category"
				],
				"summary": "Update a sub-category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"sub-category"
				],
				"summary": "Delete a sub-category",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/brand": {
			"get": {
				"tags": [
					"brand"
				],
				"summary": "List brands",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				}
			},
			"post": {
				"tags": [
					"brand"
				],
				"summary": "Create a brand",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "brand"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/brand/{id}": {
			"get": {
				"tags": [
					"brand"
				],
				"summary": "Get a brand",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"brand"
				],
				"summary": "Update a brand",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"brand"
				],
				"summary": "Delete a brand",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/suppliers": {
			"get": {
				"tags": [
					"suppliers"
				],
				"summary": "List suppliers",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"suppliers"
				],
				"summary": "Create a supplier",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "supplier"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/suppliers/{id}": {
			"get": {
				"tags": [
					"suppliers"
				],
				"summary": "Get a supplier",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"suppliers"
				],
				"summary": "Update a supplier",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"suppliers"
				],
				"summary": "Delete a supplier",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/coupon": {
			"get": {
				"tags": [
					"coupon"
				],
				"summary": "List coupons",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"coupon"
				],
				"summary": "Create a coupon",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "coupon"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/coupon/{id}": {
			"get": {
				"tags": [
					"coupon"
				],
				"summary": "Get a coupon",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"coupon"
				],
				"summary": "Update a coupon",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"coupon"
				],
				"summary": "Delete a coupon",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/tax": {
			"get": {
				"tags": [
					"tax"
				],
				"summary": "Get tax settings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"tax"
				],
				"summary": "Create or update tax settings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "taxPrice and shippingPrice"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"tax"
				],
				"summary": "Reset tax settings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/product": {
			"get": {
				"tags": [
					"product"
				],
				"summary": "List products",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
						"in": "query"
					},
					{
						"type": "string",
						"name": "keyword",
						"in": "query"
					},
					{
						"type": "string",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"name": "fields",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"product"
				],
				"summary": "Create a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "product"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/product/{id}": {
			"get": {
				"tags": [
					"product"
				],
				"summary": "Get a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"product"
				],
				"summary": "Update a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "fields"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"product"
				],
				"summary": "Delete a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/product/{id}/images": {
			"post": {
				"tags": [
					"product"
				],
				"summary": "Upload a product image",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "file",
						"name": "file",
						"in": "formData",
						"required": true
					},
					{
						"type": "boolean",
						"name": "cover",
						"in": "formData"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/cart": {
			"get": {
				"tags": [
					"cart"
				],
				"summary": "Get own cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"cart"
				],
				"summary": "Clear own cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/cart/coupon": {
			"post": {
				"tags": [
					"cart"
				],
				"summary": "Apply a coupon",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "name"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/cart/{productId}": {
			"post": {
				"tags": [
					"cart"
				],
				"summary": "Add a product to the cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "productId",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "quantity and color"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/cart/{itemId}": {
			"patch": {
				"tags": [
					"cart"
				],
				"summary": "Update a cart line",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "itemId",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "quantity and color"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"cart"
				],
				"summary": "Remove a cart line",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "itemId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order": {
			"post": {
				"tags": [
					"order"
				],
				"summary": "Place an order from the cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "shippingAddress and paymentMethodType"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"order"
				],
				"summary": "List own orders",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order/{id}": {
			"get": {
				"tags": [
					"order"
				],
				"summary": "Get own order",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"order"
				],
				"summary": "Cancel own order",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order/admin/all": {
			"get": {
				"tags": [
					"order"
				],
				"summary": "List all orders",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "boolean",
						"name": "isPaid",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "isDelivered",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "isCanceled",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order/admin/stats": {
			"get": {
				"tags": [
					"order"
				],
				"summary": "Order statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order/{id}/deliver": {
			"patch": {
				"tags": [
					"order"
				],
				"summary": "Mark an order delivered",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/order/{id}/paid": {
			"patch": {
				"tags": [
					"order"
				],
				"summary": "Mark an order paid",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "success",
						"schema": {
							"$ref": "#/definitions/handler.envelope"
						}
					},
					"400": {
						"description": "bad request",
						"schema": {
							"$ref": "#/definitions/handler.errorPayload"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "payment result"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"handler.envelope": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				},
				"pagination": {
					"$ref": "#/definitions/handler.pagination"
				},
				"data": {}
			}
		},
		"handler.pagination": {
			"type": "object",
			"properties": {
				"currentPage": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"totalItems": {
					"type": "integer"
				}
			}
		},
		"handler.errorPayload": {
			"type": "object",
			"properties": {
				"request_id": {
					"type": "string"
				},
				"error": {
					"$ref": "#/definitions/handler.errorEnvelope"
				}
			}
		},
		"handler.errorEnvelope": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shop API",
	Description:      "E-commerce backend: catalog, cart, coupons and orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
