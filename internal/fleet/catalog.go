// Package fleet provides the read-only vehicle catalog. The catalog is
// static reference data: it is loaded once at startup and never mutated,
// and rate changes between restarts cannot affect existing records
// because rates are snapshotted at booking time.
package fleet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lululale/zoom-car-rental/internal/domain"
)

// Catalog is an immutable list of rentable vehicles with id lookup.
type Catalog struct {
	vehicles []domain.Vehicle
	byID     map[string]domain.Vehicle
}

// New builds a catalog from a vehicle list.
func New(vehicles []domain.Vehicle) *Catalog {
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &Catalog{vehicles: vehicles, byID: byID}
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet file: %w", err)
	}

	var doc struct {
		Vehicles []domain.Vehicle `yaml:"vehicles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fleet file: %w", err)
	}
	if len(doc.Vehicles) == 0 {
		return nil, fmt.Errorf("fleet file %s lists no vehicles", path)
	}
	return New(doc.Vehicles), nil
}

// List returns the vehicles in a category, or the whole fleet when the
// category is "all" or empty.
func (c *Catalog) List(category domain.VehicleCategory) []domain.Vehicle {
	if category == "" || category == domain.VehicleCategoryAll {
		return append([]domain.Vehicle(nil), c.vehicles...)
	}
	var out []domain.Vehicle
	for _, v := range c.vehicles {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// Get looks a vehicle up by id.
func (c *Catalog) Get(id string) (*domain.Vehicle, error) {
	v, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, id)
	}
	return &v, nil
}

// Default returns the standard ten-vehicle fleet used when no fleet file
// is configured.
func Default() *Catalog {
	return New([]domain.Vehicle{
		{ID: "CAR001", Name: "Toyota Camry", Category: domain.VehicleCategoryEconomy, Seats: 5, Transmission: "Auto", DailyRateCents: 4500, Available: true, Plate: "ABC-1234"},
		{ID: "CAR002", Name: "Honda Civic", Category: domain.VehicleCategoryEconomy, Seats: 5, Transmission: "Manual", DailyRateCents: 4000, Available: true, Plate: "DEF-5678"},
		{ID: "CAR003", Name: "BMW 5 Series", Category: domain.VehicleCategoryLuxury, Seats: 5, Transmission: "Auto", DailyRateCents: 12000, Available: true, Plate: "GHI-9012"},
		{ID: "CAR004", Name: "Mercedes E-Class", Category: domain.VehicleCategoryLuxury, Seats: 5, Transmission: "Auto", DailyRateCents: 13500, Available: true, Plate: "JKL-3456"},
		{ID: "CAR005", Name: "Tesla Model 3", Category: domain.VehicleCategoryLuxury, Seats: 5, Transmission: "Auto", DailyRateCents: 9500, Available: true, Plate: "MNO-7890"},
		{ID: "CAR006", Name: "Toyota RAV4", Category: domain.VehicleCategorySUV, Seats: 7, Transmission: "Auto", DailyRateCents: 7000, Available: true, Plate: "PQR-2345"},
		{ID: "CAR007", Name: "Ford Explorer", Category: domain.VehicleCategorySUV, Seats: 7, Transmission: "Auto", DailyRateCents: 8500, Available: true, Plate: "STU-6789"},
		{ID: "CAR008", Name: "Jeep Wrangler", Category: domain.VehicleCategorySUV, Seats: 5, Transmission: "Manual", DailyRateCents: 8000, Available: true, Plate: "VWX-0123"},
		{ID: "CAR009", Name: "Hyundai Elantra", Category: domain.VehicleCategoryEconomy, Seats: 5, Transmission: "Auto", DailyRateCents: 4200, Available: true, Plate: "YZA-4567"},
		{ID: "CAR010", Name: "Audi A6", Category: domain.VehicleCategoryLuxury, Seats: 5, Transmission: "Auto", DailyRateCents: 12500, Available: true, Plate: "BCD-8901"},
	})
}
