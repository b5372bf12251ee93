package assessment

import (
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// AssessedVehicle is a vehicle with its assessed value.
type AssessedVehicle struct {
	Vehicle
	AssessedValue decimal.Decimal `json:"assessed_value"`
}

// AssessVehicles values each vehicle in input order.
//
// A vehicle needed for the applicant's mobility is fully disregarded, as is a
// vehicle in regular use bought before the out-of-scope window. A vehicle in
// regular use bought inside the window is reduced by the vehicle disregard.
// Any other vehicle counts at its value less outstanding finance.
func AssessVehicles(vehicles []Vehicle, submissionDate time.Time, th Thresholds) ([]AssessedVehicle, error) {
	result := make([]AssessedVehicle, 0, len(vehicles))
	if len(vehicles) == 0 {
		return result, nil
	}

	disregard, err := th.Value(threshold.VehicleDisregard)
	if err != nil {
		return nil, err
	}
	months, err := th.Value(threshold.VehicleOutOfScopeMonths)
	if err != nil {
		return nil, err
	}

	submitted := day(submissionDate)
	var v validation
	for _, vehicle := range vehicles {
		if !vehicle.DateOfPurchase.IsZero() && day(vehicle.DateOfPurchase).After(submitted) {
			v.add(MsgDateOfPurchaseInFuture)
			continue
		}
		result = append(result, AssessedVehicle{
			Vehicle:       vehicle,
			AssessedValue: vehicleValue(vehicle, submitted, disregard, int(months.IntPart())).Round(2),
		})
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	return result, nil
}

func vehicleValue(v Vehicle, submitted time.Time, disregard decimal.Decimal, outOfScopeMonths int) decimal.Decimal {
	if v.UsedForMobility {
		return decimal.Zero
	}
	net := v.Value.Sub(v.LoanAmountOutstanding)
	if !v.InRegularUse {
		return maxZero(net)
	}
	if !v.DateOfPurchase.IsZero() && !day(v.DateOfPurchase).AddDate(0, outOfScopeMonths, 0).After(submitted) {
		return decimal.Zero
	}
	return maxZero(net.Sub(disregard))
}
