// Package docs serves the OpenAPI 2.0 document behind /swagger. It follows the
// swag annotations on the handlers and cmd/api/main.go; keep both in step when
// a route changes (server.TestEveryRouteIsDocumented fails otherwise).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/account": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["account"], "summary": "Get account",
                "responses": {"200": {"description": "Account", "schema": {"$ref": "#/definitions/models.Account"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/account/balance": {
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["account"], "summary": "Set balance",
                "parameters": [{"description": "New balance", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetBalanceRequest"}}],
                "responses": {"200": {"description": "Account", "schema": {"$ref": "#/definitions/models.Account"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/account/data": {
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["account"], "summary": "Delete all data",
                "responses": {"200": {"description": "Deleted counts", "schema": {"$ref": "#/definitions/services.DataResetResult"}}}}
        },
        "/budgets": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["budgets"], "summary": "Get budgets",
                "parameters": [
                    {"type": "string", "description": "Filter by month (YYYY-MM)", "name": "month", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "Paginated budgets"}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["budgets"], "summary": "Create a budget",
                "parameters": [{"description": "Budget details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateBudgetRequest"}}],
                "responses": {"201": {"description": "Budget created"}, "409": {"description": "Budget already exists", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/budgets/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["budgets"], "summary": "Get budget by ID",
                "parameters": [{"type": "string", "description": "Budget ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Budget"}, "404": {"description": "Budget not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["budgets"], "summary": "Update budget limit",
                "parameters": [
                    {"type": "string", "description": "Budget ID", "name": "id", "in": "path", "required": true},
                    {"description": "New limit", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateBudgetRequest"}}
                ],
                "responses": {"200": {"description": "Budget updated"}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["budgets"], "summary": "Delete budget",
                "parameters": [{"type": "string", "description": "Budget ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Budget deleted"}}}
        },
        "/budgets/{id}/progress": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["budgets"], "summary": "Get budget progress",
                "parameters": [{"type": "string", "description": "Budget ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Budget progress"}}}
        },
        "/internal/market/refresh": {
            "post": {"security": [{"ApiKeyAuth": []}], "produces": ["application/json"], "tags": ["internal"], "summary": "Refresh quotes",
                "responses": {"200": {"description": "Refresh result"}, "401": {"description": "Invalid API key"}, "503": {"description": "Quotes unavailable"}}}
        },
        "/investments": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["investments"], "summary": "Get investments",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "Paginated investments"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["investments"], "summary": "Create an investment",
                "parameters": [{"description": "Investment details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvestmentRequest"}}],
                "responses": {"201": {"description": "Investment created"}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/investments/allocation.png": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["image/png"], "tags": ["investments"], "summary": "Get allocation chart",
                "parameters": [{"enum": ["type", "record"], "type": "string", "description": "Group by type or record", "name": "by", "in": "query"}],
                "responses": {"200": {"description": "PNG image"}, "422": {"description": "Nothing to chart"}}}
        },
        "/investments/preview": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["investments"], "summary": "Preview an investment",
                "parameters": [{"description": "Candidate investment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvestmentRequest"}}],
                "responses": {"200": {"description": "Preview"}}}
        },
        "/investments/rates": {
            "get": {"produces": ["application/json"], "tags": ["investments"], "summary": "Get return rates", "responses": {"200": {"description": "Rate table"}}}
        },
        "/investments/risk/{type}": {
            "get": {"produces": ["application/json"], "tags": ["investments"], "summary": "Classify risk",
                "parameters": [{"type": "string", "description": "Investment type", "name": "type", "in": "path", "required": true}],
                "responses": {"200": {"description": "Risk assessment"}}}
        },
        "/investments/summary": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["investments"], "summary": "Get portfolio summary",
                "parameters": [{"type": "string", "description": "ISO 4217 display currency (default INR)", "name": "currency", "in": "query"}],
                "responses": {"200": {"description": "Portfolio summary"}}}
        },
        "/investments/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["investments"], "summary": "Get investment by ID",
                "parameters": [{"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Investment"}, "404": {"description": "Investment not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["investments"], "summary": "Delete investment",
                "parameters": [{"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Investment deleted"}}}
        },
        "/investments/{id}/projections": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["investments"], "summary": "Get investment projections",
                "parameters": [{"type": "string", "description": "Investment ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Projections"}}}
        },
        "/market/instruments": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["market"], "summary": "Get curated instruments",
                "parameters": [{"type": "string", "description": "Filter by investment type (crypto, stocks)", "name": "type", "in": "query"}],
                "responses": {"200": {"description": "Instruments"}}}
        },
        "/market/quotes": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["market"], "summary": "Get quote snapshot", "responses": {"200": {"description": "Snapshot"}}}
        },
        "/market/stream": {
            "get": {"tags": ["market"], "summary": "Stream quotes", "responses": {"101": {"description": "Switching protocols"}, "503": {"description": "Streaming disabled"}}}
        },
        "/monthly-limits": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["monthly-limits"], "summary": "List monthly limits",
                "responses": {"200": {"description": "Monthly limits", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MonthlyLimit"}}}}},
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["monthly-limits"], "summary": "Set monthly limit",
                "parameters": [{"description": "Limit details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetMonthlyLimitRequest"}}],
                "responses": {"200": {"description": "Monthly limit", "schema": {"$ref": "#/definitions/models.MonthlyLimit"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/monthly-limits/{month}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["monthly-limits"], "summary": "Monthly limit progress",
                "parameters": [{"type": "string", "description": "Month (YYYY-MM)", "name": "month", "in": "path", "required": true}],
                "responses": {"200": {"description": "Progress", "schema": {"$ref": "#/definitions/services.MonthlyLimitProgress"}}, "404": {"description": "No limit set", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/reports/export": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["reports"], "summary": "Export report",
                "parameters": [{"type": "string", "description": "ISO 4217 display currency (default INR)", "name": "currency", "in": "query"}],
                "responses": {"200": {"description": "Report"}}}
        },
        "/savings-goals": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["savings"], "summary": "Get savings goals", "responses": {"200": {"description": "Paginated goals"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["savings"], "summary": "Create a savings goal",
                "parameters": [{"description": "Goal details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateSavingsGoalRequest"}}],
                "responses": {"201": {"description": "Goal created"}}}
        },
        "/savings-goals/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["savings"], "summary": "Get savings goal by ID",
                "parameters": [{"type": "string", "description": "Goal ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Goal"}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["savings"], "summary": "Delete savings goal",
                "parameters": [{"type": "string", "description": "Goal ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Goal deleted"}}}
        },
        "/savings-goals/{id}/contribute": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["savings"], "summary": "Contribute to a savings goal",
                "parameters": [
                    {"type": "string", "description": "Goal ID", "name": "id", "in": "path", "required": true},
                    {"description": "Contribution", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ContributeRequest"}}
                ],
                "responses": {"200": {"description": "Updated goal"}}}
        },
        "/transactions": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["transactions"], "summary": "Get transactions",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Filter by start date (RFC3339 or YYYY-MM-DD)", "name": "from_date", "in": "query"},
                    {"type": "string", "description": "Filter by end date (RFC3339 or YYYY-MM-DD)", "name": "to_date", "in": "query"},
                    {"type": "string", "description": "Filter by transaction type (income, expense)", "name": "type", "in": "query"},
                    {"type": "string", "description": "Filter by category", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "Paginated transactions"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["transactions"], "summary": "Create a transaction",
                "parameters": [{"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {"201": {"description": "Transaction created"}}}
        },
        "/transactions/summary": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["transactions"], "summary": "Get transaction summary", "responses": {"200": {"description": "Summary"}}}
        },
        "/transactions/{id}": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["transactions"], "summary": "Get transaction by ID",
                "parameters": [{"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction details"}}},
            "delete": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["transactions"], "summary": "Delete transaction",
                "parameters": [{"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Transaction deleted"}}}
        }
    },
    "definitions": {
        "handlers.ContributeRequest": {"type": "object", "required": ["amount"], "properties": {"amount": {"type": "number"}}},
        "handlers.CreateBudgetRequest": {"type": "object", "required": ["category", "limit", "month"], "properties": {"category": {"type": "string", "maxLength": 64, "minLength": 1}, "limit": {"type": "number"}, "month": {"type": "string"}}},
        "handlers.CreateSavingsGoalRequest": {"type": "object", "required": ["goal_name", "target_amount"], "properties": {"current_amount": {"type": "number"}, "description": {"type": "string", "maxLength": 500}, "goal_name": {"type": "string", "maxLength": 100, "minLength": 1}, "target_amount": {"type": "number"}, "target_date": {"type": "string"}}},
        "handlers.CreateTransactionRequest": {"type": "object", "required": ["amount", "category", "type"], "properties": {"amount": {"type": "number"}, "category": {"type": "string", "maxLength": 64, "minLength": 1}, "date": {"type": "string"}, "description": {"type": "string", "maxLength": 500}, "type": {"type": "string"}}},
        "handlers.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string", "example": "INVALID_INPUT"}, "message": {"type": "string", "example": "Invalid input"}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}},
        "handlers.InvestmentRequest": {"type": "object", "required": ["amount_invested"], "properties": {"amount_invested": {"type": "number"}, "instrument_id": {"type": "string", "maxLength": 32}, "name": {"type": "string", "maxLength": 100}, "type": {"type": "string", "maxLength": 32}}},
        "handlers.SetBalanceRequest": {"type": "object", "required": ["balance"], "properties": {"balance": {"type": "number"}}},
        "handlers.SetMonthlyLimitRequest": {"type": "object", "required": ["limit"], "properties": {"limit": {"type": "number"}, "month": {"type": "string"}}},
        "handlers.UpdateBudgetRequest": {"type": "object", "required": ["limit"], "properties": {"limit": {"type": "number"}}},
        "models.Account": {"type": "object", "properties": {"balance": {"type": "number"}, "created_at": {"type": "string"}, "currency": {"type": "string"}, "id": {"type": "string"}, "updated_at": {"type": "string"}, "user_id": {"type": "string"}}},
        "models.MonthlyLimit": {"type": "object", "properties": {"created_at": {"type": "string"}, "id": {"type": "string"}, "limit": {"type": "number"}, "month": {"type": "string"}, "updated_at": {"type": "string"}, "user_id": {"type": "string"}}},
        "services.DataResetResult": {"type": "object", "properties": {"budgets": {"type": "integer"}, "investments": {"type": "integer"}, "monthly_limits": {"type": "integer"}, "savings_goals": {"type": "integer"}, "transactions": {"type": "integer"}}},
        "services.MonthlyLimitProgress": {"type": "object", "properties": {"limit": {"type": "number"}, "month": {"type": "string"}, "percentage": {"type": "number"}, "remaining": {"type": "number"}, "spent": {"type": "number"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "WealthTrack API",
	Description:      "WealthTrack tracks income, expenses, budgets, savings goals and investments, and projects a portfolio forward.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
