package model

import "math"

// ShipmentEstimate holds the results of an order fulfillment calculation.
type ShipmentEstimate struct {
	OrderQuantity       int     `json:"order_quantity"`
	UnitsPerContainer   int     `json:"units_per_container"`
	ContainersExact     float64 `json:"containers_exact"`  // Exact fractional containers
	ContainersNeeded    int     `json:"containers_needed"` // Ceiling of exact
	ContainersPerPallet int     `json:"containers_per_pallet"`
	PalletsNeeded       int     `json:"pallets_needed"`
	OverpackUnits       int     `json:"overpack_units"` // Slack units in the last container
	EstimatedCost       float64 `json:"estimated_cost"` // Total cost if pricing available
	CostPerPallet       float64 `json:"cost_per_pallet"`
}

// CalculateShipmentEstimate computes how many containers and pallets an
// order needs given a solved arrangement and pallet layout. Zero
// unitsPerContainer or containersPerPallet yields a zeroed estimate rather
// than dividing by zero.
func CalculateShipmentEstimate(orderQty, unitsPerContainer, containersPerPallet int, costPerPallet float64) ShipmentEstimate {
	est := ShipmentEstimate{
		OrderQuantity:       orderQty,
		UnitsPerContainer:   unitsPerContainer,
		ContainersPerPallet: containersPerPallet,
		CostPerPallet:       costPerPallet,
	}
	if orderQty <= 0 || unitsPerContainer <= 0 {
		return est
	}

	exact := float64(orderQty) / float64(unitsPerContainer)
	est.ContainersExact = exact
	est.ContainersNeeded = int(math.Ceil(exact))
	est.OverpackUnits = est.ContainersNeeded*unitsPerContainer - orderQty

	if containersPerPallet > 0 {
		est.PalletsNeeded = int(math.Ceil(float64(est.ContainersNeeded) / float64(containersPerPallet)))
		est.EstimatedCost = float64(est.PalletsNeeded) * costPerPallet
	}
	return est
}
