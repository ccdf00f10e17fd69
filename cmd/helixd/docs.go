package main

// General API documentation for swaggo. Run `swag init -g cmd/helixd/docs.go`
// to regenerate the docs package.
//
// @title           helixd API
// @version         1.0
// @description     HTTP API for the gesture-controlled 3D DNA visualization backend.
//
// @contact.name   helixd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
