// Package api is the HTTP client for the MycoMarket REST API.
//
// It owns the request pipeline: bearer-token injection from the session
// manager, the {success, data, message} envelope, and the single
// refresh-and-retry pass on 401 responses. The typed endpoint files
// (forum.go, products.go, farmers.go, chat.go, community.go, users.go,
// uploads.go) are flat request builders with no business logic; services
// on top of this package handle caching and validation.
package api
