package repository

import (
	"context"
	"fmt"

	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAirportsTableName = "refdata_airports"
	defaultRoutesTableName   = "refdata_routes"
	defaultRatesTableName    = "refdata_rates"
)

type airportItem struct {
	City    string `dynamodbav:"city"`
	Country string `dynamodbav:"country"`
	Code    string `dynamodbav:"code"`
}

type routeItem struct {
	FromCity string `dynamodbav:"from_city"`
	ToCity   string `dynamodbav:"to_city"`
	PriceUSD int    `dynamodbav:"price_usd"`
}

type rateItem struct {
	Currency  string  `dynamodbav:"currency"`
	RateToUSD float64 `dynamodbav:"rate_to_usd"`
}

// RefDataDynamoRepository loads the static lookup tables from DynamoDB.
//
// Table requirements:
//   - refdata_airports: PK city (string), attributes country, code
//   - refdata_routes:   PK from_city (string), SK to_city (string), price_usd
//   - refdata_rates:    PK currency (string), rate_to_usd
//
// The tables are small (tens of items) so a full Scan at startup is fine.
// Loaded data is immutable for the process lifetime; this repository has no
// write path.
type RefDataDynamoRepository struct {
	ddb           *dynamodb.Client
	airportsTable string
	routesTable   string
	ratesTable    string
}

var _ interfaces.IReferenceDataRepository = (*RefDataDynamoRepository)(nil)

func NewRefDataDynamoRepository(ddb *dynamodb.Client) *RefDataDynamoRepository {
	return &RefDataDynamoRepository{
		ddb:           ddb,
		airportsTable: getenvDefault("AIRPORTS_TABLE", defaultAirportsTableName),
		routesTable:   getenvDefault("ROUTES_TABLE", defaultRoutesTableName),
		ratesTable:    getenvDefault("RATES_TABLE", defaultRatesTableName),
	}
}

func (r *RefDataDynamoRepository) LoadAirports(ctx context.Context) ([]entities.AirportEntry, error) {
	items, err := r.scan(ctx, r.airportsTable)
	if err != nil {
		return nil, err
	}

	var raw []airportItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("refdata: unmarshal airports: %w", err)
	}

	entries := make([]entities.AirportEntry, 0, len(raw))
	for _, it := range raw {
		if it.City == "" || it.Code == "" {
			continue
		}
		entries = append(entries, entities.AirportEntry{
			City:    it.City,
			Country: it.Country,
			Code:    entities.LocationCode(it.Code),
		})
	}
	return entries, nil
}

func (r *RefDataDynamoRepository) LoadRoutes(ctx context.Context) ([]entities.RouteEntry, error) {
	items, err := r.scan(ctx, r.routesTable)
	if err != nil {
		return nil, err
	}

	var raw []routeItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("refdata: unmarshal routes: %w", err)
	}

	entries := make([]entities.RouteEntry, 0, len(raw))
	for _, it := range raw {
		if it.FromCity == "" || it.ToCity == "" || it.PriceUSD <= 0 {
			continue
		}
		entries = append(entries, entities.RouteEntry{
			FromCity: it.FromCity,
			ToCity:   it.ToCity,
			PriceUSD: it.PriceUSD,
		})
	}
	return entries, nil
}

func (r *RefDataDynamoRepository) LoadFallbackRates(ctx context.Context) (map[string]float64, error) {
	items, err := r.scan(ctx, r.ratesTable)
	if err != nil {
		return nil, err
	}

	var raw []rateItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("refdata: unmarshal rates: %w", err)
	}

	rates := make(map[string]float64, len(raw))
	for _, it := range raw {
		if it.Currency == "" || it.RateToUSD <= 0 {
			continue
		}
		rates[it.Currency] = it.RateToUSD
	}
	return rates, nil
}

func (r *RefDataDynamoRepository) scan(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, fmt.Errorf("refdata: scan %s: %w", table, err)
	}
	return out.Items, nil
}
