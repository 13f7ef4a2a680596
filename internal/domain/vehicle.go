package domain

type VehicleCategory string

const (
	VehicleCategoryAll     VehicleCategory = "all"
	VehicleCategoryEconomy VehicleCategory = "economy"
	VehicleCategoryLuxury  VehicleCategory = "luxury"
	VehicleCategorySUV     VehicleCategory = "suv"
)

// Vehicle is static fleet reference data. Vehicles are never created or
// destroyed at runtime; rate changes never propagate to existing records
// because every record snapshots the rate at booking time.
type Vehicle struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Category       VehicleCategory `json:"category" yaml:"category"`
	Seats          int32           `json:"seats" yaml:"seats"`
	Transmission   string          `json:"transmission" yaml:"transmission"`
	DailyRateCents int64           `json:"daily_rate_cents" yaml:"daily_rate_cents"`
	Available      bool            `json:"available" yaml:"available"`
	Plate          string          `json:"plate" yaml:"plate"`
}

// ParseVehicleCategory validates a category filter value.
func ParseVehicleCategory(s string) (VehicleCategory, bool) {
	switch VehicleCategory(s) {
	case VehicleCategoryAll, VehicleCategoryEconomy, VehicleCategoryLuxury, VehicleCategorySUV:
		return VehicleCategory(s), true
	}
	return "", false
}
