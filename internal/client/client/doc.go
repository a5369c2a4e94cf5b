// Package client talks to the portal's Portal gRPC service.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI. GRPCClient
// implements it: it keeps the member session token returned by Login,
// attaches it (and the staff admin key, when configured) to every call
// through a unary interceptor, bounds each call with a timeout and maps
// gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Transport problems come back as ErrUnavailable, missing or expired
// sessions as ErrUnauthorized and a rejected staff key as ErrForbidden.
// Domain outcomes reuse the sentinels of internal/common
// (ErrorEntityNotFound, ErrorInvalidCredentials, ErrorNotFound,
// ErrorAlreadyExists, ErrorValidation, ErrorPartialWrite); match them with
// errors.Is.
package client
