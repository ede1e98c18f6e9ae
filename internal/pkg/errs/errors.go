// Package errs defines the domain error taxonomy shared by all services.
// Messages are part of the API contract and surface verbatim to callers.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTripNotFound    = errors.New("Trip not found")
	ErrTruckNotFound   = errors.New("Truck not found")
	ErrTrailerNotFound = errors.New("Trailer not found")
	ErrDriverNotFound  = errors.New("Driver not found")
	ErrUserNotFound    = errors.New("User not found")

	ErrInvalidDriver  = errors.New("Invalid Driver selected")
	ErrInvalidTruck   = errors.New("Invalid Truck selected")
	ErrInvalidTrailer = errors.New("Invalid Trailer selected")
	ErrInvalidMileage = errors.New("End mileage cannot be less than start mileage")

	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrUserExists         = errors.New("User already exists")
	ErrTruckPlateExists   = errors.New("Truck with this license plate already exists")
	ErrTrailerPlateExists = errors.New("Trailer with this plate already exists")

	ErrTruckOnTrip     = errors.New("Cannot delete a truck while it is on a trip")
	ErrTrailerAttached = errors.New("Cannot delete a trailer while it is attached to a trip")
)

// ResourceUnavailableError reports a truck or trailer that is not available
// for allocation, naming its current status.
type ResourceUnavailableError struct {
	Resource string // "Truck" or "Trailer"
	Plate    string
	Status   string
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("%s %s is currently %s", e.Resource, e.Plate, e.Status)
}

// OverloadError reports cargo weight exceeding a resource's load ceiling.
type OverloadError struct {
	Resource string // "Truck" or "Trailer"
	LimitKg  float64
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("OVERLOAD: %s limit is %.0fkg", e.Resource, e.LimitKg)
}

// InvalidTransitionError reports a rejected trip status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid trip status transition: %s -> %s", e.From, e.To)
}

// HTTPStatus maps a domain error to the HTTP status handlers respond with.
// Missing entities on id-addressed endpoints are 404; every business-rule
// failure is 400; anything unrecognized is treated as unexpected.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrTruckNotFound),
		errors.Is(err, ErrTrailerNotFound),
		errors.Is(err, ErrDriverNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidDriver),
		errors.Is(err, ErrInvalidTruck),
		errors.Is(err, ErrInvalidTrailer),
		errors.Is(err, ErrInvalidMileage),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserExists),
		errors.Is(err, ErrTruckPlateExists),
		errors.Is(err, ErrTrailerPlateExists),
		errors.Is(err, ErrTruckOnTrip),
		errors.Is(err, ErrTrailerAttached):
		return http.StatusBadRequest
	}

	var unavailable *ResourceUnavailableError
	var overload *OverloadError
	var transition *InvalidTransitionError
	if errors.As(err, &unavailable) || errors.As(err, &overload) || errors.As(err, &transition) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
