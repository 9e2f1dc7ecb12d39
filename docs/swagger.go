// Package docs Venue Reservation Service API.
//
// Бэкенд площадок для мероприятий: салоны (salones) с фильтрацией по
// локации, тегам, цене и вместимости, избранные салоны баннеров и
// бронирования (reservas), привязанные к салонам.
//
// Регенерация: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {"get": {"tags": ["Health"], "summary": "Проверка состояния сервиса", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/v1/salones-evento/all": {"get": {"tags": ["Venues"], "summary": "Все салоны", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/salones-evento/salones": {"get": {"tags": ["Venues"], "summary": "Фильтрация салонов",
            "parameters": [
                {"type": "string", "name": "idCiudSalonEvento", "in": "query"},
                {"type": "string", "enum": ["ciudad", "departamento"], "name": "tipo_ubicacion", "in": "query"},
                {"type": "string", "name": "idAmbienteSalon", "in": "query"},
                {"type": "string", "name": "idEspaciosSalon", "in": "query"},
                {"type": "string", "name": "idServiciosSalon", "in": "query"},
                {"type": "string", "name": "idTipoSalon", "in": "query"},
                {"type": "string", "name": "idUbicacionSalon", "in": "query"},
                {"type": "number", "name": "precio_sal", "in": "query"},
                {"type": "string", "name": "capacidad_sal", "in": "query"}
            ],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/salones-evento/salones-destacados": {"get": {"tags": ["Venues"], "summary": "Салоны главного баннера", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/salones-evento/salones-destacados-ubicacion": {"get": {"tags": ["Venues"], "summary": "Салоны баннера локации", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/salones-evento/ciudad/{idCiudSalonEvento}": {"get": {"tags": ["Venues"], "summary": "Салоны города", "parameters": [{"type": "string", "name": "idCiudSalonEvento", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/salones-evento/salones/{location}": {"get": {"tags": ["Venues"], "summary": "Салоны по названию города или департамента", "parameters": [{"type": "string", "name": "location", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/salones-evento/{id}": {"get": {"tags": ["Venues"], "summary": "Салон по ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/salones-evento/registro": {"post": {"tags": ["Venues"], "summary": "Регистрация салона", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/salones-evento/editar/{id}": {"put": {"tags": ["Venues"], "summary": "Редактирование салона", "consumes": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/salones-evento/activar/{id}": {"put": {"tags": ["Venues"], "summary": "Активация салона", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/salones-evento/inactivar/{id}": {"put": {"tags": ["Venues"], "summary": "Деактивация салона", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/reservas/all": {"get": {"tags": ["Reservations"], "summary": "Все бронирования", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reservas/nombre-cliente/{nombre_cliente}": {"get": {"tags": ["Reservations"], "summary": "Бронирования клиента", "parameters": [{"type": "string", "name": "nombre_cliente", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reservas/{id}": {"get": {"tags": ["Reservations"], "summary": "Бронирование по ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/reservas/registro": {"post": {"tags": ["Reservations"], "summary": "Регистрация бронирования", "consumes": ["application/json"], "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/reservas/editar/{id}": {"put": {"tags": ["Reservations"], "summary": "Редактирование бронирования", "consumes": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/reservas/activar/{id}": {"put": {"tags": ["Reservations"], "summary": "Активация бронирования", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/reservas/inactivar/{id}": {"put": {"tags": ["Reservations"], "summary": "Деактивация бронирования", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Venue Reservation Service API",
	Description:      "CRUD салонов для мероприятий и бронирований.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
