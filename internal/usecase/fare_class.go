package usecase

import (
	"strings"

	"flight_price_api/internal/domain/entities"
)

// fareClassAliases is the exact-match table of recognized fare-class
// spellings after lowercasing and trimming.
var fareClassAliases = map[string]entities.FareClass{
	"economy":         entities.FareClassEconomy,
	"business":        entities.FareClassBusiness,
	"first":           entities.FareClassFirst,
	"premium economy": entities.FareClassPremiumEconomy,
	"premium-economy": entities.FareClassPremiumEconomy,
	"premiumeconomy":  entities.FareClassPremiumEconomy,
	"premium_economy": entities.FareClassPremiumEconomy,
}

// NormalizeFareClass maps arbitrary user input to one of the recognized fare
// classes. Anything unrecognized, including the empty string, resolves to
// economy. It never fails.
func NormalizeFareClass(raw string) entities.FareClass {
	if fc, ok := fareClassAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return fc
	}
	return entities.FareClassEconomy
}
