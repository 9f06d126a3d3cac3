// Package server provides HTTP routing and middleware for the HTML viewer.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering. Path patterns may use
// wildcards ("/sheets/{id}"); handlers read them with [http.Request.PathValue].
//
// # Middleware
//
//   - [RequestLogger] tags every request with a uuid request id and logs method, path, status and duration.
//   - [RateLimit] rejects requests beyond a token bucket with 429 Too Many Requests.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
