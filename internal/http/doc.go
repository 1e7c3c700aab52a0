// Package http provides HTTP handlers and middleware for the booking API.
//
// The router exposes the following endpoints:
//   - POST /rooms: creates a room. Body: {"name","seats","amenities","price"}.
//     Responds 201 with {"message","room"} or 400 with the validation message.
//   - POST /bookings: books a room. Body: {"customerName","date","startTime",
//     "endTime","roomId"}. Responds 201 with {"message","booking"}, 400 for
//     validation failures and slot conflicts, or 404 when the room is unknown.
//   - GET /rooms: lists every room with its bookings attached.
//   - GET /customers: lists every booking joined with its room name.
//   - GET /customers/{customerName}/bookings: lists one customer's bookings
//     with their count, or 404 when the customer has none.
//   - GET /healthz: reports storage health.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
