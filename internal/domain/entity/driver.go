package entity

import "time"

// Vehicle describes a delivery vehicle.
type Vehicle struct {
	Type  string `json:"type"`  // Vehicle type, e.g. "Motorcycle".
	Plate string `json:"plate"` // License plate.
	Color string `json:"color"` // Vehicle color.
}

// Driver is one delivery driver candidate. The driver pool is owned by the
// external driver inventory; the engine only reads candidates.
type Driver struct {
	ID                  string     `json:"id"`                           // Inventory identifier.
	Name                string     `json:"name"`                         // Driver name.
	Phone               string     `json:"phone"`                        // Contact phone.
	CurrentLocation     string     `json:"current_location"`             // Last reported location.
	Vehicle             Vehicle    `json:"vehicle"`                      // Vehicle descriptor.
	Rating              float64    `json:"rating"`                       // Rolling rating.
	DeliveriesCompleted int        `json:"deliveries_completed"`         // Completed delivery count.
	Available           bool       `json:"available"`                    // Availability flag.
	EstimatedArrival    *time.Time `json:"estimated_arrival,omitempty"`  // ETA once assigned.
}

// VehicleInfo renders the vehicle descriptor the way the commerce backend
// stores it, e.g. "Motorcycle - DLV-001".
func (d *Driver) VehicleInfo() string {
	return d.Vehicle.Type + " - " + d.Vehicle.Plate
}

// Waypoint is one point of a computed delivery route.
type Waypoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Route is a computed delivery route with distance and duration.
type Route struct {
	DistanceKm float64       `json:"distance_km"`
	Duration   time.Duration `json:"duration"`
	Waypoints  []Waypoint    `json:"waypoints"`
}

// Assignment records a driver assigned to an order. Created once per
// qualifying order and never mutated afterwards.
type Assignment struct {
	OrderID    string    `json:"order_id"`
	DriverID   string    `json:"driver_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Route      Route     `json:"route"`
}
