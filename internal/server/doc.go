// Package server provides the recipe HTTP API: routing, middleware, handlers and lifecycle.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
// [BasicRouter] registers Go 1.22 method patterns ("PUT /api/recipes/{id}") on an [http.ServeMux]
// and wraps the entire mux with its [Middleware], last added executing first.
//
// Custom handlers implement the [Handler] interface, returning their own [Route] list so route
// definitions stay next to the code that serves them.
//
// # Endpoints
//
//	GET    /api/recipes       list every recipe
//	POST   /api/recipes       create a recipe
//	PUT    /api/recipes/{id}  replace a recipe
//	DELETE /api/recipes/{id}  delete a recipe
//	GET    /health            liveness
//	GET    /ready             readiness, checks the store
//	GET    /metrics           Prometheus metrics
//
// Create and update bodies are decoded into [RecipeRequest] and validated with go-playground/validator.
// All six fields are required; a member that is absent, null or "" counts as missing, and the first
// missing field in the order title, ingredients, instructions, servings, description, image_url is
// reported. For update and delete the recipe must exist before the body is considered.
//
// # Middleware
//
// [Server] installs, outermost first: [RequestID], [Recover], [Metrics], [LogRequests] and [CORS].
package server
