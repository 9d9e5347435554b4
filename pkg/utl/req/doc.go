// Package req shapes HTTP requests and responses.
//
// Highlights:
// - GetToken/ReqParse: read a bearer token and merged request parameters
// - ResolveOrReject/TryParseBody: interpret a JSON envelope from another service
// - RequestHandler/ErrorHandler: write a uniform JSON reply through a Responder
// - HTTPError: an error with an HTTP code, status text and stack trace
package req
