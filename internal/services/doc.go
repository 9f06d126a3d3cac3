// Package services loads the work instruction sheet collection.
//
// # Sheet Source
//
// The [Source] interface abstracts where the collection comes from. [Loader] implements it for:
//   - http:// and https:// URLs, fetched once with the configured [http.Client]
//   - file:// URLs and bare paths, read from disk
//
// # Error Handling
//
// Load failures are reported as [*LoadError] values:
//   - HTTPStatus: the server answered with a non-2xx status ([shared.ErrHTTPStatus])
//   - ParseError: the body is not a JSON array of sheet objects ([shared.ErrParse])
//
// Transport failures (connection refused, missing file) wrap [shared.ErrAPIRequest].
// None of them are retried; a failed load is terminal for the session.
//
// # Links
//
// Sheet links are usually relative to the document that lists them. [Loader.Resolve] turns a link into an
// absolute URL using the source location as the base.
package services
