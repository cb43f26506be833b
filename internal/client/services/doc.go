// Package services contains the application services of the EduHub client:
// the admin session lifecycle, the content loader with its offline cache,
// the upload and delete coordinators, storage status, quick access and
// downloads.
//
// Services return plain values and classified errors; rendering is left to
// the view package and the REPL.
package services
