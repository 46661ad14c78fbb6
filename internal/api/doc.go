// Package api handles incoming HTTP requests, request validation, and
// response formatting for the dashboard, automation and chat panels. It acts
// as an adapter between external clients and the internal panel services,
// translating HTTP concerns to service calls and service errors to status
// codes.
package api
