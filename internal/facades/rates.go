package facades

import (
	"context"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// RateProviderGRPCFacade fetches USD conversion rates for fundable
// currencies from the external exchange service over gRPC.
type RateProviderGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewRateProviderGRPCFacade creates a new facade with a gRPC client.
func NewRateProviderGRPCFacade(client pb.ExchangeServiceClient) *RateProviderGRPCFacade {
	return &RateProviderGRPCFacade{client: client}
}

// GetRates fetches all rates and returns them as map[currency]USD-per-unit.
func (f *RateProviderGRPCFacade) GetRates(ctx context.Context) (map[string]float64, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate)
	}

	return rates, nil
}

// GetRate fetches the USD conversion rate for a single currency.
func (f *RateProviderGRPCFacade) GetRate(ctx context.Context, currency string) (float64, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: currency,
		ToCurrency:   "USD",
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch rate for currency via gRPC",
			"currency", currency, "error", err)
		return 0, err
	}

	return float64(resp.Rate), nil
}
