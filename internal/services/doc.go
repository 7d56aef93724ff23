// Package services implements [RecipeService], a typed client for the recipe HTTP API.
//
// [RecipeClient] is used by the CLI and the terminal UI so both go through the same validation
// and persistence path as any other frontend.
//
// # Error Handling
//
// Non-2xx responses are returned as *[APIError], which carries the status code and the server's
// error message and wraps a sentinel from the shared package:
//   - [shared.ErrRecipeNotFound] : 404 responses
//   - [shared.ErrInvalidInput] : 400 responses, e.g. "Missing required field: 'title'"
//   - [shared.ErrAPIRequest] : any other failure status
//
// Transport failures wrap [shared.ErrServiceUnavailable].
package services
