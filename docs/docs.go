// Package docs registra el documento OpenAPI que sirve /swagger/*, generado a
// partir de las anotaciones de los handlers.
// Se regenera con `swag init -g cmd/api/main.go`.
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
        "/analyses/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyses"
                ],
                "summary": "Listar análisis",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analyses.AnalysisResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyses"
                ],
                "summary": "Crear análisis",
                "parameters": [
                    {
                        "description": "Análisis",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analyses.analysisRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.AnalysisResponse"
                        }
                    },
                    "400": {
                        "description": "<campo> references a missing row",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/analyses/{analysisID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyses"
                ],
                "summary": "Obtener análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del análisis",
                        "name": "analysisID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.AnalysisResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyses"
                ],
                "summary": "Reemplazar análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del análisis",
                        "name": "analysisID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Análisis (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analyses.analysisRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.AnalysisResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyses"
                ],
                "summary": "Borrar análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del análisis",
                        "name": "analysisID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/analysis-types/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analysis-types"
                ],
                "summary": "Listar tipos de análisis",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/analyses.TypeResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analysis-types"
                ],
                "summary": "Crear tipo de análisis",
                "parameters": [
                    {
                        "description": "Tipo de análisis",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analyses.typeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.TypeResponse"
                        }
                    },
                    "403": {
                        "description": "requiere catalog:write",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/analysis-types/{typeID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analysis-types"
                ],
                "summary": "Obtener tipo de análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del tipo",
                        "name": "typeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.TypeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analysis-types"
                ],
                "summary": "Reemplazar tipo de análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del tipo",
                        "name": "typeID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Tipo (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/analyses.typeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analyses.TypeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra también los análisis de ese tipo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analysis-types"
                ],
                "summary": "Borrar tipo de análisis",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del tipo",
                        "name": "typeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/appointments/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Incluye la mascota, vacunaciones, análisis y el ` + "`" + `procedure` + "`" + ` derivado (vacunación tiene prioridad sobre análisis).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Listar citas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointments.appointmentResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Crear cita",
                "parameters": [
                    {
                        "description": "Cita; scheduled_at ISO-8601",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.createRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "400": {
                        "description": "validación / pet_id o clinic_id inexistente",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/appointments/{appointmentID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Obtener cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Reemplazar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cita (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.updateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra también sus vacunaciones y análisis.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Borrar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/appointments/{appointmentID}/conclusion": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Requiere appointments:review (rol service).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Registrar conclusión de la cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Conclusión",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.conclusionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/appointments/{appointmentID}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Requiere appointments:review (rol service).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Cambiar estado de la cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Nuevo estado (p.ej. completed)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.statusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/breeds/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeds"
                ],
                "summary": "Listar razas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeds.BreedResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeds"
                ],
                "summary": "Crear raza",
                "parameters": [
                    {
                        "description": "Raza",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.breedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BreedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "403": {
                        "description": "requiere catalog:write",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/breeds/{breedID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeds"
                ],
                "summary": "Obtener raza",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BreedResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeds"
                ],
                "summary": "Reemplazar raza",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Raza (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.breedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.BreedResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra la raza y, en cascada, sus mascotas.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeds"
                ],
                "summary": "Borrar raza",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "breedID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/clinics/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clinics"
                ],
                "summary": "Listar clínicas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clinics.clinicResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clinics"
                ],
                "summary": "Crear clínica",
                "parameters": [
                    {
                        "description": "Clínica",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinics.clinicRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinics.clinicResponse"
                        }
                    },
                    "403": {
                        "description": "requiere catalog:write",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/clinics/{clinicID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clinics"
                ],
                "summary": "Obtener clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la clínica",
                        "name": "clinicID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinics.clinicResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clinics"
                ],
                "summary": "Reemplazar clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la clínica",
                        "name": "clinicID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Clínica (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinics.clinicRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinics.clinicResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Falla con 400 si la clínica todavía tiene citas.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clinics"
                ],
                "summary": "Borrar clínica",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la clínica",
                        "name": "clinicID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "400": {
                        "description": "clinic has appointments",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/medicine-takes/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicine-takes"
                ],
                "summary": "Listar tomas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/medicines.takeResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicine-takes"
                ],
                "summary": "Registrar toma de medicamento",
                "parameters": [
                    {
                        "description": "Toma; datetime ISO-8601",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.takeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.takeResponse"
                        }
                    },
                    "400": {
                        "description": "datetime inválido / FK inexistente",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/medicine-takes/{takeID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicine-takes"
                ],
                "summary": "Obtener toma",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la toma",
                        "name": "takeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.takeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicine-takes"
                ],
                "summary": "Reemplazar toma",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la toma",
                        "name": "takeID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Toma (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.takeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.takeResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicine-takes"
                ],
                "summary": "Borrar toma",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la toma",
                        "name": "takeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/medicines/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Listar medicamentos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/medicines.medicineResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Crear medicamento",
                "parameters": [
                    {
                        "description": "Medicamento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "403": {
                        "description": "requiere catalog:write",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/medicines/{medicineID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Obtener medicamento",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Reemplazar medicamento",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Medicamento (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra también sus tomas registradas.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Borrar medicamento",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/pets/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Por defecto solo las del usuario. ` + "`" + `all=true` + "`" + ` lista todas y requiere pets:read_all.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Listar mascotas",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Listar todas (personal de la clínica)",
                        "name": "all",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
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
                "description": "Crea una mascota cuyo dueño es el usuario del token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Crear mascota",
                "parameters": [
                    {
                        "description": "Mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.petRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "validación / breed_id references a missing row",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Obtener mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "404": {
                        "description": "también si la mascota es de otro dueño",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Reemplazar mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Mascota (name, age y breed_id obligatorios)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.petRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra la mascota con sus citas, vacunaciones y tomas de medicamentos.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Borrar mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/users/login": {
            "post": {
                "description": "Formulario OAuth2 password (` + "`" + `username` + "`" + ` = email, ` + "`" + `password` + "`" + `). También acepta el mismo cuerpo en JSON.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.tokenResponse"
                        }
                    },
                    "401": {
                        "description": "incorrect username or password",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Usuario actual",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/users/me/password": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Cambiar password",
                "parameters": [
                    {
                        "description": "Password actual y nuevo",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.changePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "400": {
                        "description": "old_password is incorrect",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/users/register": {
            "post": {
                "description": "Crea una cuenta. El email es único (sin distinguir mayúsculas); role es ` + "`" + `user` + "`" + ` (default) o ` + "`" + `service` + "`" + `.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Registrar usuario",
                "parameters": [
                    {
                        "description": "Datos del usuario",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.registerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userResponse"
                        }
                    },
                    "400": {
                        "description": "email already registered / validación",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/vaccinations/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Listar vacunaciones",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/vaccines.VaccinationResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Registrar vacunación",
                "parameters": [
                    {
                        "description": "Vacunación",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccines.vaccinationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccinationResponse"
                        }
                    },
                    "400": {
                        "description": "<campo> references a missing row",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/vaccinations/{vaccinationID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Obtener vacunación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccinationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Reemplazar vacunación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Vacunación (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccines.vaccinationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccinationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Borrar vacunación",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/vaccines/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccines"
                ],
                "summary": "Listar vacunas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/vaccines.VaccineResponse"
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
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccines"
                ],
                "summary": "Crear vacuna",
                "parameters": [
                    {
                        "description": "Vacuna",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccines.vaccineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccineResponse"
                        }
                    },
                    "403": {
                        "description": "requiere catalog:write",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        },
        "/vaccines/{vaccineID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccines"
                ],
                "summary": "Obtener vacuna",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacuna",
                        "name": "vaccineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccineResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccines"
                ],
                "summary": "Reemplazar vacuna",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacuna",
                        "name": "vaccineID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Vacuna (todos los campos)",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccines.vaccineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccines.VaccineResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Borra también sus vacunaciones.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccines"
                ],
                "summary": "Borrar vacuna",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la vacuna",
                        "name": "vaccineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httpx.DetailResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analyses.AnalysisResponse": {
            "type": "object",
            "properties": {
                "analysis_type": {
                    "$ref": "#/definitions/analyses.TypeResponse"
                },
                "analysis_type_id": {
                    "type": "integer"
                },
                "appointment_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                }
            }
        },
        "analyses.TypeResponse": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "instructions": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "analyses.analysisRequest": {
            "type": "object",
            "required": [
                "appointment_id",
                "analysis_type_id"
            ],
            "properties": {
                "analysis_type_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "appointment_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                }
            }
        },
        "analyses.typeRequest": {
            "type": "object",
            "required": [
                "name",
                "description",
                "instructions"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "appointments.ProcedureType": {
            "type": "string",
            "enum": [
                "Vaccination",
                "Analysis"
            ],
            "x-enum-varnames": [
                "ProcedureVaccination",
                "ProcedureAnalysis"
            ]
        },
        "appointments.appointmentResponse": {
            "type": "object",
            "properties": {
                "analyses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analyses.AnalysisResponse"
                    }
                },
                "clinic_id": {
                    "type": "integer"
                },
                "conclusion": {
                    "type": "string"
                },
                "conclusion_status": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "pet": {
                    "$ref": "#/definitions/appointments.petSummary"
                },
                "pet_id": {
                    "type": "integer"
                },
                "procedure": {
                    "$ref": "#/definitions/appointments.procedureResponse"
                },
                "scheduled_at": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "vaccinations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/vaccines.VaccinationResponse"
                    }
                }
            }
        },
        "appointments.conclusionRequest": {
            "type": "object",
            "required": [
                "conclusion_status"
            ],
            "properties": {
                "conclusion": {
                    "type": "string"
                },
                "conclusion_status": {
                    "type": "string"
                }
            }
        },
        "appointments.createRequest": {
            "type": "object",
            "required": [
                "pet_id",
                "clinic_id",
                "scheduled_at",
                "status"
            ],
            "properties": {
                "clinic_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "conclusion": {
                    "type": "string"
                },
                "conclusion_status": {
                    "type": "string"
                },
                "pet_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "scheduled_at": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "appointments.petSummary": {
            "type": "object",
            "properties": {
                "age": {
                    "type": "integer"
                },
                "breed_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                }
            }
        },
        "appointments.procedureResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/appointments.ProcedureType"
                }
            }
        },
        "appointments.statusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "appointments.updateRequest": {
            "type": "object",
            "required": [
                "pet_id",
                "clinic_id",
                "scheduled_at",
                "status",
                "conclusion_status"
            ],
            "properties": {
                "clinic_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "conclusion": {
                    "type": "string"
                },
                "conclusion_status": {
                    "type": "string"
                },
                "pet_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "scheduled_at": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "breeds.BreedResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "breeds.breedRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "clinics.clinicRequest": {
            "type": "object",
            "required": [
                "name",
                "address",
                "phone"
            ],
            "properties": {
                "address": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "clinics.clinicResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "httpx.DetailResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                }
            }
        },
        "medicines.medicineRequest": {
            "type": "object",
            "required": [
                "name",
                "period_hours"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "period_hours": {
                    "type": "integer",
                    "maximum": 8760,
                    "minimum": 0
                }
            }
        },
        "medicines.medicineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "period_hours": {
                    "type": "integer"
                }
            }
        },
        "medicines.takeRequest": {
            "type": "object",
            "required": [
                "medicine_id",
                "pet_id",
                "datetime"
            ],
            "properties": {
                "datetime": {
                    "type": "string"
                },
                "medicine_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "pet_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                }
            }
        },
        "medicines.takeResponse": {
            "type": "object",
            "properties": {
                "datetime": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "medicine": {
                    "$ref": "#/definitions/medicines.medicineResponse"
                },
                "medicine_id": {
                    "type": "integer"
                },
                "next_due": {
                    "type": "string"
                },
                "pet_id": {
                    "type": "integer"
                }
            }
        },
        "pets.petRequest": {
            "type": "object",
            "required": [
                "name",
                "age",
                "breed_id"
            ],
            "properties": {
                "age": {
                    "type": "integer",
                    "maximum": 100,
                    "minimum": 0
                },
                "breed_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "name": {
                    "type": "string"
                },
                "recommendations": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "age": {
                    "type": "integer"
                },
                "breed": {
                    "$ref": "#/definitions/breeds.BreedResponse"
                },
                "breed_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                },
                "recommendations": {
                    "type": "string"
                }
            }
        },
        "users.Role": {
            "type": "string",
            "enum": [
                "user",
                "service"
            ],
            "x-enum-varnames": [
                "RoleUser",
                "RoleService"
            ]
        },
        "users.changePasswordRequest": {
            "type": "object",
            "required": [
                "old_password",
                "new_password"
            ],
            "properties": {
                "new_password": {
                    "type": "string",
                    "maxLength": 72
                },
                "old_password": {
                    "type": "string"
                }
            }
        },
        "users.registerRequest": {
            "type": "object",
            "required": [
                "name",
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "maxLength": 72
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "service"
                    ]
                }
            }
        },
        "users.tokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                }
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/users.Role"
                }
            }
        },
        "vaccines.VaccinationResponse": {
            "type": "object",
            "properties": {
                "appointment_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "pet_id": {
                    "type": "integer"
                },
                "vaccine": {
                    "$ref": "#/definitions/vaccines.VaccineResponse"
                },
                "vaccine_id": {
                    "type": "integer"
                }
            }
        },
        "vaccines.VaccineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "manufacturer": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "vaccines.vaccinationRequest": {
            "type": "object",
            "required": [
                "vaccine_id",
                "pet_id",
                "appointment_id"
            ],
            "properties": {
                "appointment_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "pet_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                },
                "vaccine_id": {
                    "type": "integer",
                    "minimum": 0,
                    "exclusiveMinimum": true
                }
            }
        },
        "vaccines.vaccineRequest": {
            "type": "object",
            "required": [
                "name",
                "manufacturer",
                "type"
            ],
            "properties": {
                "manufacturer": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "vet-clinic API",
	Description:      "Historias clínicas veterinarias.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
