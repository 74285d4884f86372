package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	httpclient "github.com/hailgo/hailcore/internal/pkg/http"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// PaymentGW talks to the wallet service for commission checks and charges
type PaymentGW struct {
	client *httpclient.Client
}

// NewPaymentGW creates the payment gateway
func NewPaymentGW(cfg *models.Config) *PaymentGW {
	return &PaymentGW{
		client: httpclient.NewClient(cfg.Payment.ServiceURL, 0),
	}
}

// GetWalletByOwnerID fetches the wallet backing a user account
func (g *PaymentGW) GetWalletByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	path := fmt.Sprintf("/wallets/owner/%s", ownerID)
	if err := g.client.GetJSON(ctx, path, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

type paymentRequest struct {
	WalletID uuid.UUID `json:"wallet_id"`
	Amount   float64   `json:"amount"`
}

// ProcessPayment debits amount from the wallet
func (g *PaymentGW) ProcessPayment(ctx context.Context, walletID uuid.UUID, amount float64) error {
	req := paymentRequest{WalletID: walletID, Amount: amount}
	return g.client.PostJSON(ctx, "/payments", req, nil)
}
