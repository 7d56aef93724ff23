// Package tasks runs multi-request recipe operations against a [services.RecipeService] with progress reporting.
//
// # Core Operations
//
//  1. [RecipeEngine.BulkImport] : create many recipes through the API
//     - Bounded worker pool (1..10 workers)
//     - Requests paced by a token bucket limiter
//     - Partial failures are collected per recipe; the run continues
//
//  2. [RecipeEngine.Export] : fetch the catalog and write it as JSON, CSV, Markdown or text
//
// [LoadImportFile] reads the JSON or CSV files accepted by BulkImport.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
// A nil channel disables reporting; a full channel drops updates instead of stalling the operation.
package tasks
